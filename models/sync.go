package models

import (
	"encoding/json"
	"time"
)

// Sync document sections. Their internal shape is owned by the client.
const (
	SectionContacts           = "contacts"
	SectionWorldBooks         = "world_books"
	SectionUserPersonaPresets = "user_persona_presets"
	SectionThoughtPresets     = "thought_presets"
	SectionMyProfile          = "my_profile"
)

var (
	emptyList   = json.RawMessage(`[]`)
	emptyObject = json.RawMessage(`{}`)
)

// SyncDocument is the single versioned blob a user synchronizes between
// devices. Version starts at 0 and grows by exactly one per accepted write.
type SyncDocument struct {
	Contacts           json.RawMessage `json:"contacts"`
	WorldBooks         json.RawMessage `json:"worldBooks"`
	UserPersonaPresets json.RawMessage `json:"userPersonaPresets"`
	ThoughtPresets     json.RawMessage `json:"thoughtPresets"`
	MyProfile          json.RawMessage `json:"myProfile"`
	Version            int64           `json:"version"`
	UpdatedAt          *time.Time      `json:"updatedAt,omitempty"`
}

// EmptySyncDocument returns the default document served to users that have
// no stored document yet.
func EmptySyncDocument() SyncDocument {
	return SyncDocument{
		Contacts:           emptyList,
		WorldBooks:         emptyList,
		UserPersonaPresets: emptyList,
		ThoughtPresets:     emptyList,
		MyProfile:          emptyObject,
		Version:            0,
	}
}

// SyncPush is a conditional write. Every section is optional; absent
// sections keep their stored value. Version is the version the client based
// its changes on and must be present.
type SyncPush struct {
	Contacts           json.RawMessage `json:"contacts,omitempty"`
	WorldBooks         json.RawMessage `json:"worldBooks,omitempty"`
	UserPersonaPresets json.RawMessage `json:"userPersonaPresets,omitempty"`
	ThoughtPresets     json.RawMessage `json:"thoughtPresets,omitempty"`
	MyProfile          json.RawMessage `json:"myProfile,omitempty"`
	Version            *int64          `json:"version"`
}

// Sections returns the present sections keyed by column name. A JSON null
// counts as absent.
func (p SyncPush) Sections() map[string]json.RawMessage {
	sections := make(map[string]json.RawMessage, 5)
	add := func(column string, value json.RawMessage) {
		if isPresent(value) {
			sections[column] = value
		}
	}

	add(SectionContacts, p.Contacts)
	add(SectionWorldBooks, p.WorldBooks)
	add(SectionUserPersonaPresets, p.UserPersonaPresets)
	add(SectionThoughtPresets, p.ThoughtPresets)
	add(SectionMyProfile, p.MyProfile)

	return sections
}

func isPresent(value json.RawMessage) bool {
	return len(value) > 0 && string(value) != "null"
}

// SyncPushResult is the body of a successful push.
type SyncPushResult struct {
	Version int64  `json:"version"`
	Message string `json:"message,omitempty"`
}
