package post

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostStringTruncatesText(t *testing.T) {
	p := Post{Text: "Тестовый пост с длинным текстом"}
	assert.Equal(t, "Тестовый пост с", p.String())

	short := Post{Text: "short"}
	assert.Equal(t, "short", short.String())
}

func TestEditDecision(t *testing.T) {
	author := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())
	p := &Post{UserID: author}

	assert.Equal(t, Allowed, p.EditDecision(author))
	assert.Equal(t, Denied, p.EditDecision(other))
	assert.Equal(t, Denied, p.EditDecision(uuid.Nil))
	assert.Equal(t, "denied", Denied.String())
}
