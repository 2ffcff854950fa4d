package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionPayload_Alias verifies alias resolution order and that
// present numeric zeros win over later aliases: zero is a legitimate value,
// not an absence.
func TestTransactionPayload_Alias(t *testing.T) {
	var payload TransactionPayload
	require.NoError(t, json.Unmarshal([]byte(`{"amount":0,"value":5,"payee":"Bakery"}`), &payload))

	assert.Equal(t, "0", payload.Alias("amount", "value"))
	assert.Equal(t, "Bakery", payload.Alias("merchant", "payee"))
	assert.Equal(t, "", payload.Alias("category", "type"))
}
