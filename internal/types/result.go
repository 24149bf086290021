package types

// ParseMetadata describes the processed upload.
type ParseMetadata struct {
	ExtractedTextPreview string `json:"extractedTextPreview"`
	FileType             string `json:"fileType"`
	FileSize             int    `json:"fileSize"`
	ProcessingTime       string `json:"processingTime"`
}

// ParseResult is the single response envelope of the parse operation.
// Exactly one of the success/error branches is populated.
type ParseResult struct {
	Success    bool           `json:"success"`
	Profile    *Profile       `json:"profile,omitempty"`
	RMSData    *RMSProfile    `json:"rmsData,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
	Metadata   *ParseMetadata `json:"metadata,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// FailedParse builds a failure-shaped result.
func FailedParse(message string) *ParseResult {
	return &ParseResult{Success: false, Error: message}
}
