package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_BeforeCreate_AssignsGUID(t *testing.T) {
	u := &User{Name: "Иван", Surname: "Петров", Email: "ivan@example.com"}

	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, u.GUID)
}

func TestUser_BeforeCreate_KeepsExistingGUID(t *testing.T) {
	preset := uuid.New()
	u := &User{GUID: preset, Email: "ivan@example.com"}

	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, preset, u.GUID)
}

func TestEntities_TableNames(t *testing.T) {
	assert.Equal(t, "user", User{}.TableName())
	assert.Equal(t, "test", Test{}.TableName())
	assert.Equal(t, "question", Question{}.TableName())
	assert.Equal(t, "answer", Answer{}.TableName())
}
