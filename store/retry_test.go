package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    DuplicateKeyCode,
		Message: "E11000 duplicate key error collection: test.chats index: chat_identity",
	}}}
}

func TestRetryOnDuplicateKeySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := retryOnDuplicateKey(func() error {
		calls++
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryOnDuplicateKeyStopsOnOtherErrors(t *testing.T) {
	calls := 0
	expected := errors.New("network down")
	err := retryOnDuplicateKey(func() error {
		calls++
		return expected
	}, 3)

	assert.Equal(t, expected, err)
	assert.Equal(t, 1, calls)
}

func TestRetryOnDuplicateKeyResolves(t *testing.T) {
	calls := 0
	err := retryOnDuplicateKey(func() error {
		calls++
		if calls < 2 {
			return duplicateKeyError()
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryOnDuplicateKeyExhausts(t *testing.T) {
	calls := 0
	err := retryOnDuplicateKey(func() error {
		calls++
		return duplicateKeyError()
	}, 2)

	assert.True(t, isDuplicateKeyError(err))
	assert.Equal(t, 3, calls)
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(duplicateKeyError()))
	assert.True(t, isDuplicateKeyError(mongo.CommandError{Code: DuplicateKeyCode}))
	assert.True(t, isDuplicateKeyError(mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{{
		WriteError: mongo.WriteError{Code: DuplicateKeyCode},
	}}}))
	assert.False(t, isDuplicateKeyError(mongo.CommandError{Code: 2}))
	assert.False(t, isDuplicateKeyError(errors.New("boom")))
}
