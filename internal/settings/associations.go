package settings

import (
	"encoding/json"
	"log"
)

// The key-file association table remembers which key file unlocks which
// database. It is stored as one JSON blob under KeyKeyFileAssociations,
// keyed by DatabaseID. Every mutating operation is a no-op while the
// KeepKeyFileAssociations toggle is off, and turning the toggle off
// clears the whole table.

func (s *Settings) associationTable() map[string]FileRef {
	raw, ok := s.read(KeyKeyFileAssociations)
	if !ok {
		return map[string]FileRef{}
	}
	var m map[string]FileRef
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return map[string]FileRef{}
	}
	return m
}

func (s *Settings) writeAssociationTable(m map[string]FileRef) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("settings: encode %s: %v", KeyKeyFileAssociations, err)
		return
	}
	s.write(KeyKeyFileAssociations, string(data))
	s.bus.Publish(KeyKeyFileAssociations)
}

func (s *Settings) KeepKeyFileAssociations() bool { return keepKeyFileAssociations.get(s) }

// SetKeepKeyFileAssociations toggles whether key-file associations are
// remembered. Disabling it clears the entire table synchronously.
func (s *Settings) SetKeepKeyFileAssociations(keep bool) {
	wasKept := keepKeyFileAssociations.get(s)
	keepKeyFileAssociations.set(s, keep)
	if wasKept && !keep {
		s.dropAssociationTable()
	}
}

// KeyFileForDatabase returns the key file associated with the database,
// nil when there is none.
func (s *Settings) KeyFileForDatabase(databaseID string) *FileRef {
	if ref, ok := s.associationTable()[databaseID]; ok {
		return &ref
	}
	return nil
}

// AssociateKeyFile records ref as the database's key file; a nil ref
// removes the association.
func (s *Settings) AssociateKeyFile(databaseID string, ref *FileRef) {
	if !s.KeepKeyFileAssociations() {
		return
	}
	m := s.associationTable()
	old, had := m[databaseID]
	if ref == nil {
		if !had {
			return
		}
		delete(m, databaseID)
	} else {
		if had && old == *ref {
			return
		}
		m[databaseID] = *ref
	}
	s.writeAssociationTable(m)
}

// ForgetKeyFile removes every association pointing at that exact key
// file, leaving all others untouched.
func (s *Settings) ForgetKeyFile(ref FileRef) {
	if !s.KeepKeyFileAssociations() {
		return
	}
	m := s.associationTable()
	changed := false
	for id, r := range m {
		if r == ref {
			delete(m, id)
			changed = true
		}
	}
	if changed {
		s.writeAssociationTable(m)
	}
}

// ClearKeyFileAssociations drops the whole table.
func (s *Settings) ClearKeyFileAssociations() {
	if !s.KeepKeyFileAssociations() {
		return
	}
	s.dropAssociationTable()
}

// dropAssociationTable bypasses the keep toggle; the disable path uses
// it after the toggle is already off.
func (s *Settings) dropAssociationTable() {
	if len(s.associationTable()) == 0 {
		return
	}
	s.writeAssociationTable(map[string]FileRef{})
}
