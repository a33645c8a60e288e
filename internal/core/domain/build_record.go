package domain

import "time"

// BuildRecord describes the last successful native build of a preset.
type BuildRecord struct {
	Preset      string            `json:"preset,omitzero"`
	Platform    Platform          `json:"platform,omitzero"`
	Version     string            `json:"version,omitzero"`
	Fingerprint string            `json:"fingerprint,omitzero"`
	Arguments   []string          `json:"arguments,omitempty"`
	InstallRoot string            `json:"install_root,omitzero"`
	Outputs     map[string]string `json:"outputs,omitempty"`
	CompletedAt time.Time         `json:"completed_at,omitzero"`
}
