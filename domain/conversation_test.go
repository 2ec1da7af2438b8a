package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMessage_DedupesConsecutiveRepeat(t *testing.T) {
	s := NewSession("s1")

	s.AddMessage("user", "hello")
	s.AddMessage("user", "hello")
	s.AddMessage("assistant", "hello")
	s.AddMessage("user", "hello")

	assert.Len(t, s.Messages, 3)
}

func TestContext_WindowsLastN(t *testing.T) {
	s := NewSession("s1")
	s.AddMessage("user", "one")
	s.AddMessage("assistant", "two")
	s.AddMessage("user", "three")

	assert.Equal(t, "assistant: two\nuser: three", s.Context(2))
	assert.Equal(t, "user: one\nassistant: two\nuser: three", s.Context(10))
	assert.Equal(t, "", NewSession("empty").Context(5))
}
