package usps

// Service is an eVS mail class.
type Service string

const (
	ServicePriority        Service = "PRIORITY"
	ServicePriorityExpress Service = "PRIORITY EXPRESS"
	ServiceFirstClass      Service = "FIRST CLASS"
	ServiceParcelSelect    Service = "PARCEL SELECT GROUND"
	ServiceLibrary         Service = "LIBRARY"
	ServiceMedia           Service = "MEDIA"
	ServiceBPM             Service = "BPM"
)

// DefaultService is used when a label request names no service.
const DefaultService = ServicePriority

// LabelType is the rendering format of a shipping label image.
type LabelType string

const (
	LabelZPL  LabelType = "ZPLII"
	LabelPDF  LabelType = "PDF"
	Label4x6  LabelType = "4X6LABEL"
	LabelTIFF LabelType = "TIF"
)

// DefaultLabelType is used when a label request names no image type.
const DefaultLabelType = LabelZPL
