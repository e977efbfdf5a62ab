package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DevSender implements Sender for local development. It writes each
// submission to a timestamped JSON file instead of calling the relay, so the
// full flow can be exercised without provider credentials.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves submissions to disk.
// The directory is created on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// devSubmission is the on-disk shape: the payload plus when it was captured.
type devSubmission struct {
	CapturedAt  string  `json:"captured_at"`
	ReferenceID string  `json:"reference_id"`
	Payload     Payload `json:"payload"`
}

// Send writes the submission to <dir>/<timestamp>_<reference>.json.
func (d *DevSender) Send(ctx context.Context, p Payload) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrDeliveryFailed, err)
	}

	now := time.Now()
	name := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405"), p.ReferenceID)

	data, err := json.MarshalIndent(devSubmission{
		CapturedAt:  now.Format(time.RFC3339),
		ReferenceID: p.ReferenceID,
		Payload:     p,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
