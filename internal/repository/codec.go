package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// EncodeSessions serializes the history as a JSON array, newest first. A nil
// slice encodes as [] so the slot always holds an array.
func EncodeSessions(sessions []domain.StoredSession) ([]byte, error) {
	if sessions == nil {
		sessions = []domain.StoredSession{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, fmt.Errorf("encoding sessions: %w", err)
	}
	return data, nil
}

// DecodeSessions parses a history document. Blank input and JSON null decode
// to an empty history; anything that is not an array of sessions is
// ErrMalformed.
func DecodeSessions(data []byte) ([]domain.StoredSession, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var sessions []domain.StoredSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return sessions, nil
}

func encodeDraft(s domain.Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}
	return data, nil
}

// decodeDraft parses a draft and checks it is still editable.
func decodeDraft(data []byte) (*domain.Session, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &s, nil
}
