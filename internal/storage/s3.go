// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for the
// storefront's media: product and content images in a public bucket, PDF
// catalogs in a private bucket served through presigned URLs. It wraps the
// AWS SDK v2 and is configured for path-style access.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client wraps an S3 client for media operations on two buckets.
type Client struct {
	s3            *s3.Client
	presigner     *s3.PresignClient
	publicBucket  string
	privateBucket string
	endpoint      string
	publicURL     string // optional CDN/direct URL for public files
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without storage.
func New(endpoint, region, accessKey, secretKey, publicBucket, privateBucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:            s3Client,
		presigner:     s3.NewPresignClient(s3Client),
		publicBucket:  publicBucket,
		privateBucket: privateBucket,
		endpoint:      endpoint,
		publicURL:     strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object in the specified bucket. For the public bucket,
// objects are set to public-read ACL so they can be served directly.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}

	// Public bucket objects get public-read ACL.
	if bucket == c.publicBucket {
		input.ACL = s3types.ObjectCannedACLPublicRead
	}

	_, err := c.s3.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Delete removes an object from the specified bucket.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL for a file in the public bucket.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.publicBucket + "/" + key
}

// PresignedURL generates a pre-signed GET URL for a private object, used
// for catalog PDF downloads. The URL is valid for the specified duration.
func (c *Client) PresignedURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}

// PublicBucket returns the name of the public bucket.
func (c *Client) PublicBucket() string {
	return c.publicBucket
}

// PrivateBucket returns the name of the private bucket.
func (c *Client) PrivateBucket() string {
	return c.privateBucket
}
