package store

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyCode is the mongo error code of a unique index violation
const DuplicateKeyCode = 11000

const defaultMaxRetries = 3

// operation is a single attempt of a write that may lose a unique index race
type operation func() error

// retryOnDuplicateKey runs op again when it fails with a duplicate key error.
// Upserts racing on the same unique key see exactly this error on the losing
// side, and the next attempt finds the winner's record.
func retryOnDuplicateKey(op operation, maxRetries int) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		if attempt == maxRetries || !isDuplicateKeyError(err) {
			break
		}

		time.Sleep(time.Duration(10*(attempt+1)) * time.Millisecond)
	}
	return err
}

// isDuplicateKeyError checks write, bulk write and command errors for code 11000
func isDuplicateKeyError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == DuplicateKeyCode {
				return true
			}
		}
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			if e.Code == DuplicateKeyCode {
				return true
			}
		}
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == DuplicateKeyCode
	}

	return false
}
