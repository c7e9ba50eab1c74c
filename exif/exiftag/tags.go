package exiftag

// Tiff (IFD0/IFD1) tags
const (
	ImageWidth                = Tiff | 0x0100
	ImageLength               = Tiff | 0x0101
	BitsPerSample             = Tiff | 0x0102
	Compression               = Tiff | 0x0103
	PhotometricInterpretation = Tiff | 0x0106
	ImageDescription          = Tiff | 0x010E
	Make                      = Tiff | 0x010F
	Model                     = Tiff | 0x0110
	StripOffsets              = Tiff | 0x0111
	Orientation               = Tiff | 0x0112
	SamplesPerPixel           = Tiff | 0x0115
	RowsPerStrip              = Tiff | 0x0116
	StripByteCounts           = Tiff | 0x0117
	XResolution               = Tiff | 0x011A
	YResolution               = Tiff | 0x011B
	PlanarConfiguration       = Tiff | 0x011C
	ResolutionUnit            = Tiff | 0x0128
	TransferFunction          = Tiff | 0x012D
	Software                  = Tiff | 0x0131
	DateTime                  = Tiff | 0x0132
	Artist                    = Tiff | 0x013B
	WhitePoint                = Tiff | 0x013E
	PrimaryChromaticities     = Tiff | 0x013F
	JPEGInterchangeFormat     = Tiff | 0x0201
	JPEGInterchangeFormatLen  = Tiff | 0x0202
	YCbCrCoefficients         = Tiff | 0x0211
	YCbCrSubSampling          = Tiff | 0x0212
	YCbCrPositioning          = Tiff | 0x0213
	ReferenceBlackWhite       = Tiff | 0x0214
	Copyright                 = Tiff | 0x8298
	ExifIFDPointer            = Tiff | 0x8769
	GPSInfoIFDPointer         = Tiff | 0x8825
)

// Exif sub-IFD tags
const (
	ExposureTime             = Exif | 0x829A
	FNumber                  = Exif | 0x829D
	ExposureProgram          = Exif | 0x8822
	SpectralSensitivity      = Exif | 0x8824
	ISOSpeedRatings          = Exif | 0x8827
	OECF                     = Exif | 0x8828
	SensitivityType          = Exif | 0x8830
	ExifVersion              = Exif | 0x9000
	DateTimeOriginal         = Exif | 0x9003
	DateTimeDigitized        = Exif | 0x9004
	OffsetTime               = Exif | 0x9010
	OffsetTimeOriginal       = Exif | 0x9011
	OffsetTimeDigitized      = Exif | 0x9012
	ComponentsConfiguration  = Exif | 0x9101
	CompressedBitsPerPixel   = Exif | 0x9102
	ShutterSpeedValue        = Exif | 0x9201
	ApertureValue            = Exif | 0x9202
	BrightnessValue          = Exif | 0x9203
	ExposureBiasValue        = Exif | 0x9204
	MaxApertureValue         = Exif | 0x9205
	SubjectDistance          = Exif | 0x9206
	MeteringMode             = Exif | 0x9207
	LightSource              = Exif | 0x9208
	Flash                    = Exif | 0x9209
	FocalLength              = Exif | 0x920A
	SubjectArea              = Exif | 0x9214
	MakerNote                = Exif | 0x927C
	UserComment              = Exif | 0x9286
	SubSecTime               = Exif | 0x9290
	SubSecTimeOriginal       = Exif | 0x9291
	SubSecTimeDigitized      = Exif | 0x9292
	FlashpixVersion          = Exif | 0xA000
	ColorSpace               = Exif | 0xA001
	PixelXDimension          = Exif | 0xA002
	PixelYDimension          = Exif | 0xA003
	RelatedSoundFile         = Exif | 0xA004
	InteroperabilityIFDPtr   = Exif | 0xA005
	FlashEnergy              = Exif | 0xA20B
	SpatialFrequencyResponse = Exif | 0xA20C
	FocalPlaneXResolution    = Exif | 0xA20E
	FocalPlaneYResolution    = Exif | 0xA20F
	FocalPlaneResolutionUnit = Exif | 0xA210
	SubjectLocation          = Exif | 0xA214
	ExposureIndex            = Exif | 0xA215
	SensingMethod            = Exif | 0xA217
	FileSource               = Exif | 0xA300
	SceneType                = Exif | 0xA301
	CFAPattern               = Exif | 0xA302
	CustomRendered           = Exif | 0xA401
	ExposureMode             = Exif | 0xA402
	WhiteBalance             = Exif | 0xA403
	DigitalZoomRatio         = Exif | 0xA404
	FocalLengthIn35mmFilm    = Exif | 0xA405
	SceneCaptureType         = Exif | 0xA406
	GainControl              = Exif | 0xA407
	Contrast                 = Exif | 0xA408
	Saturation               = Exif | 0xA409
	Sharpness                = Exif | 0xA40A
	DeviceSettingDescription = Exif | 0xA40B
	SubjectDistanceRange     = Exif | 0xA40C
	ImageUniqueID            = Exif | 0xA420
	CameraOwnerName          = Exif | 0xA430
	BodySerialNumber         = Exif | 0xA431
	LensSpecification        = Exif | 0xA432
	LensMake                 = Exif | 0xA433
	LensModel                = Exif | 0xA434
	LensSerialNumber         = Exif | 0xA435
)

// GPS sub-IFD tags
const (
	GPSVersionID         = GPS | 0x0000
	GPSLatitudeRef       = GPS | 0x0001
	GPSLatitude          = GPS | 0x0002
	GPSLongitudeRef      = GPS | 0x0003
	GPSLongitude         = GPS | 0x0004
	GPSAltitudeRef       = GPS | 0x0005
	GPSAltitude          = GPS | 0x0006
	GPSTimeStamp         = GPS | 0x0007
	GPSSatellites        = GPS | 0x0008
	GPSStatus            = GPS | 0x0009
	GPSMeasureMode       = GPS | 0x000A
	GPSDOP               = GPS | 0x000B
	GPSSpeedRef          = GPS | 0x000C
	GPSSpeed             = GPS | 0x000D
	GPSTrackRef          = GPS | 0x000E
	GPSTrack             = GPS | 0x000F
	GPSImgDirectionRef   = GPS | 0x0010
	GPSImgDirection      = GPS | 0x0011
	GPSMapDatum          = GPS | 0x0012
	GPSDestLatitudeRef   = GPS | 0x0013
	GPSDestLatitude      = GPS | 0x0014
	GPSDestLongitudeRef  = GPS | 0x0015
	GPSDestLongitude     = GPS | 0x0016
	GPSDestBearingRef    = GPS | 0x0017
	GPSDestBearing       = GPS | 0x0018
	GPSDestDistanceRef   = GPS | 0x0019
	GPSDestDistance      = GPS | 0x001A
	GPSProcessingMethod  = GPS | 0x001B
	GPSAreaInformation   = GPS | 0x001C
	GPSDateStamp         = GPS | 0x001D
	GPSDifferential      = GPS | 0x001E
	GPSHPositioningError = GPS | 0x001F
)

// Interop sub-IFD tags
const (
	InteroperabilityIndex = Interop | 0x0001
)

var names = map[uint32]string{
	ImageWidth:                "ImageWidth",
	ImageLength:               "ImageLength",
	BitsPerSample:             "BitsPerSample",
	Compression:               "Compression",
	PhotometricInterpretation: "PhotometricInterpretation",
	ImageDescription:          "ImageDescription",
	Make:                      "Make",
	Model:                     "Model",
	StripOffsets:              "StripOffsets",
	Orientation:               "Orientation",
	SamplesPerPixel:           "SamplesPerPixel",
	RowsPerStrip:              "RowsPerStrip",
	StripByteCounts:           "StripByteCounts",
	XResolution:               "XResolution",
	YResolution:               "YResolution",
	PlanarConfiguration:       "PlanarConfiguration",
	ResolutionUnit:            "ResolutionUnit",
	TransferFunction:          "TransferFunction",
	Software:                  "Software",
	DateTime:                  "DateTime",
	Artist:                    "Artist",
	WhitePoint:                "WhitePoint",
	PrimaryChromaticities:     "PrimaryChromaticities",
	JPEGInterchangeFormat:     "JPEGInterchangeFormat",
	JPEGInterchangeFormatLen:  "JPEGInterchangeFormatLength",
	YCbCrCoefficients:         "YCbCrCoefficients",
	YCbCrSubSampling:          "YCbCrSubSampling",
	YCbCrPositioning:          "YCbCrPositioning",
	ReferenceBlackWhite:       "ReferenceBlackWhite",
	Copyright:                 "Copyright",
	ExifIFDPointer:            "ExifOffset",
	GPSInfoIFDPointer:         "GPSInfo",

	ExposureTime:             "ExposureTime",
	FNumber:                  "FNumber",
	ExposureProgram:          "ExposureProgram",
	SpectralSensitivity:      "SpectralSensitivity",
	ISOSpeedRatings:          "ISOSpeedRatings",
	OECF:                     "OECF",
	SensitivityType:          "SensitivityType",
	ExifVersion:              "ExifVersion",
	DateTimeOriginal:         "DateTimeOriginal",
	DateTimeDigitized:        "DateTimeDigitized",
	OffsetTime:               "OffsetTime",
	OffsetTimeOriginal:       "OffsetTimeOriginal",
	OffsetTimeDigitized:      "OffsetTimeDigitized",
	ComponentsConfiguration:  "ComponentsConfiguration",
	CompressedBitsPerPixel:   "CompressedBitsPerPixel",
	ShutterSpeedValue:        "ShutterSpeedValue",
	ApertureValue:            "ApertureValue",
	BrightnessValue:          "BrightnessValue",
	ExposureBiasValue:        "ExposureBiasValue",
	MaxApertureValue:         "MaxApertureValue",
	SubjectDistance:          "SubjectDistance",
	MeteringMode:             "MeteringMode",
	LightSource:              "LightSource",
	Flash:                    "Flash",
	FocalLength:              "FocalLength",
	SubjectArea:              "SubjectArea",
	MakerNote:                "MakerNote",
	UserComment:              "UserComment",
	SubSecTime:               "SubSecTime",
	SubSecTimeOriginal:       "SubSecTimeOriginal",
	SubSecTimeDigitized:      "SubSecTimeDigitized",
	FlashpixVersion:          "FlashpixVersion",
	ColorSpace:               "ColorSpace",
	PixelXDimension:          "PixelXDimension",
	PixelYDimension:          "PixelYDimension",
	RelatedSoundFile:         "RelatedSoundFile",
	InteroperabilityIFDPtr:   "InteroperabilityOffset",
	FlashEnergy:              "FlashEnergy",
	SpatialFrequencyResponse: "SpatialFrequencyResponse",
	FocalPlaneXResolution:    "FocalPlaneXResolution",
	FocalPlaneYResolution:    "FocalPlaneYResolution",
	FocalPlaneResolutionUnit: "FocalPlaneResolutionUnit",
	SubjectLocation:          "SubjectLocation",
	ExposureIndex:            "ExposureIndex",
	SensingMethod:            "SensingMethod",
	FileSource:               "FileSource",
	SceneType:                "SceneType",
	CFAPattern:               "CFAPattern",
	CustomRendered:           "CustomRendered",
	ExposureMode:             "ExposureMode",
	WhiteBalance:             "WhiteBalance",
	DigitalZoomRatio:         "DigitalZoomRatio",
	FocalLengthIn35mmFilm:    "FocalLengthIn35mmFilm",
	SceneCaptureType:         "SceneCaptureType",
	GainControl:              "GainControl",
	Contrast:                 "Contrast",
	Saturation:               "Saturation",
	Sharpness:                "Sharpness",
	DeviceSettingDescription: "DeviceSettingDescription",
	SubjectDistanceRange:     "SubjectDistanceRange",
	ImageUniqueID:            "ImageUniqueID",
	CameraOwnerName:          "CameraOwnerName",
	BodySerialNumber:         "BodySerialNumber",
	LensSpecification:        "LensSpecification",
	LensMake:                 "LensMake",
	LensModel:                "LensModel",
	LensSerialNumber:         "LensSerialNumber",

	GPSVersionID:         "GPSVersionID",
	GPSLatitudeRef:       "GPSLatitudeRef",
	GPSLatitude:          "GPSLatitude",
	GPSLongitudeRef:      "GPSLongitudeRef",
	GPSLongitude:         "GPSLongitude",
	GPSAltitudeRef:       "GPSAltitudeRef",
	GPSAltitude:          "GPSAltitude",
	GPSTimeStamp:         "GPSTimeStamp",
	GPSSatellites:        "GPSSatellites",
	GPSStatus:            "GPSStatus",
	GPSMeasureMode:       "GPSMeasureMode",
	GPSDOP:               "GPSDOP",
	GPSSpeedRef:          "GPSSpeedRef",
	GPSSpeed:             "GPSSpeed",
	GPSTrackRef:          "GPSTrackRef",
	GPSTrack:             "GPSTrack",
	GPSImgDirectionRef:   "GPSImgDirectionRef",
	GPSImgDirection:      "GPSImgDirection",
	GPSMapDatum:          "GPSMapDatum",
	GPSDestLatitudeRef:   "GPSDestLatitudeRef",
	GPSDestLatitude:      "GPSDestLatitude",
	GPSDestLongitudeRef:  "GPSDestLongitudeRef",
	GPSDestLongitude:     "GPSDestLongitude",
	GPSDestBearingRef:    "GPSDestBearingRef",
	GPSDestBearing:       "GPSDestBearing",
	GPSDestDistanceRef:   "GPSDestDistanceRef",
	GPSDestDistance:      "GPSDestDistance",
	GPSProcessingMethod:  "GPSProcessingMethod",
	GPSAreaInformation:   "GPSAreaInformation",
	GPSDateStamp:         "GPSDateStamp",
	GPSDifferential:      "GPSDifferential",
	GPSHPositioningError: "GPSHPositioningError",

	InteroperabilityIndex: "InteroperabilityIndex",
}
