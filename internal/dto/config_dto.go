package dto

// UpdateGlobalConfigRequest represents the request to replace the global
// configuration document. Absent fields keep their current value.
type UpdateGlobalConfigRequest struct {
	DefaultColumns  []string         `json:"defaultColumns,omitempty"`
	DefaultSettings *SettingsPayload `json:"defaultSettings,omitempty"`
}
