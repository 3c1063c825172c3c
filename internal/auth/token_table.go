package auth

import "strings"

// Identity is what a valid credential resolves to.
type Identity struct {
	UserID string
	Role   string
}

// TokenTable is the fixed credential set. It is built once at startup
// and never mutated, so lookups need no locking.
type TokenTable struct {
	tokens map[string]Identity
}

func NewTokenTable(tokens map[string]Identity) *TokenTable {
	cloned := make(map[string]Identity, len(tokens))
	for tok, id := range tokens {
		cloned[strings.TrimSpace(tok)] = id
	}
	return &TokenTable{tokens: cloned}
}

// DefaultTokenTable returns the hardcoded demo credential set.
func DefaultTokenTable() *TokenTable {
	return NewTokenTable(map[string]Identity{
		"admin-token-12345":    {UserID: "admin", Role: "Administrator"},
		"user-token-67890":     {UserID: "user1", Role: "User"},
		"manager-token-abcde":  {UserID: "manager1", Role: "Manager"},
		"readonly-token-fghij": {UserID: "readonly1", Role: "ReadOnly"},
	})
}

// Lookup resolves a credential to its identity. The token is trimmed
// before comparison; an empty token never matches.
func (t *TokenTable) Lookup(token string) (Identity, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, false
	}
	id, ok := t.tokens[token]
	return id, ok
}
