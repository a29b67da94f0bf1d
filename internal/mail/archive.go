package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventfinder/internal/model"
	"eventfinder/internal/storage"
)

const archivePrefix = "outbox"

// archivedEmail is the JSON document written for each delivered message.
type archivedEmail struct {
	ID       string             `json:"id"`
	Provider string             `json:"provider"`
	SentAt   time.Time          `json:"sent_at"`
	Message  model.EmailMessage `json:"message"`
}

// Archive writes delivered messages to object storage under outbox/YYYY/MM/DD/<uuid>.json.
type Archive struct {
	store storage.Storage
	now   func() time.Time
}

// NewArchive returns an Archive backed by store.
func NewArchive(store storage.Storage) *Archive {
	return &Archive{store: store, now: time.Now}
}

// Store uploads one message and returns nothing but the upload error.
func (a *Archive) Store(ctx context.Context, provider string, msg model.EmailMessage) error {
	sentAt := a.now().UTC()
	doc := archivedEmail{
		ID:       uuid.NewString(),
		Provider: provider,
		SentAt:   sentAt,
		Message:  msg,
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode archived email: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s.json", archivePrefix, sentAt.Format("2006/01/02"), doc.ID)
	_, err = a.store.Put(ctx, key, bytes.NewReader(b), storage.PutObjectOptions{
		Size:        int64(len(b)),
		ContentType: "application/json",
		Metadata:    map[string]string{"provider": provider},
	})
	return err
}
