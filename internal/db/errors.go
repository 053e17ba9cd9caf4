package db

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound reports whether err is a Firestore document-not-found error.
func isNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}
