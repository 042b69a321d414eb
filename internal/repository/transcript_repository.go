package repository

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// TranscriptRepository reads stored meeting transcripts.
type TranscriptRepository interface {
	// Fetch returns the UTF-8 transcript stored under the document id. A
	// missing key is reported as not found, not a storage failure.
	Fetch(ctx context.Context, documentID string) (string, error)
}

type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type transcriptRepository struct {
	client s3API
	bucket string
}

// NewTranscriptRepository instantiates repository.
func NewTranscriptRepository(client s3API, bucket string) TranscriptRepository {
	return &transcriptRepository{client: client, bucket: bucket}
}

func (r *transcriptRepository) Fetch(ctx context.Context, documentID string) (string, error) {
	output, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(documentID),
	})
	if err != nil {
		if isMissingObject(err) {
			return "", util.NewNotFound("transcript", map[string]any{"document_id": documentID})
		}
		return "", util.NewPersistenceError("read", err)
	}
	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)
	if err != nil {
		return "", util.NewPersistenceError("read", err)
	}
	return string(body), nil
}

func isMissingObject(err error) bool {
	var noSuchKey *s3types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound"
	}
	return false
}
