package consent

type RecordRequest struct {
	Type    string `json:"type" binding:"required,oneof=tos privacy"`
	Version string `json:"version" binding:"required"`
}
