package persistence

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PingDynamo verifies the ticket table is reachable.
func (a *AWS) PingDynamo(ctx context.Context, table string) error {
	if a == nil || a.Dynamo == nil {
		return errors.New("dynamodb client not configured")
	}
	_, err := a.Dynamo.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	return err
}

// PingS3 verifies the transcript bucket is reachable.
func (a *AWS) PingS3(ctx context.Context, bucket string) error {
	if a == nil || a.S3 == nil {
		return errors.New("s3 client not configured")
	}
	_, err := a.S3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	return err
}
