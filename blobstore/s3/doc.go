// Package s3 implements blobstore.BlobStore on Amazon S3.
package s3
