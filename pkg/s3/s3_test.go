package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://media.s3.eu-west-1.amazonaws.com/blog/a.png",
		objectURL("", "eu-west-1", "media", "blog/a.png", false))
	assert.Equal(t,
		"https://media.s3.us-east-1.amazonaws.com/a.png",
		objectURL("", "", "media", "a.png", false))
	assert.Equal(t,
		"http://localhost:9000/media/a.png",
		objectURL("http://localhost:9000/", "us-east-1", "media", "a.png", true))
	assert.Equal(t,
		"https://minio.example.com/media/a.png",
		objectURL("https://minio.example.com", "us-east-1", "media", "a.png", false))
}

func TestKeyFromURL(t *testing.T) {
	aws := &Client{bucket: "media", region: "eu-west-1"}
	key, err := aws.KeyFromURL("https://media.s3.eu-west-1.amazonaws.com/general/a.png")
	assert.NoError(t, err)
	assert.Equal(t, "general/a.png", key)

	minio := &Client{bucket: "media", endpoint: "http://localhost:9000", disableSSL: true}
	key, err = minio.KeyFromURL(minio.ObjectURL("b.mp4"))
	assert.NoError(t, err)
	assert.Equal(t, "b.mp4", key)

	_, err = minio.KeyFromURL("http://localhost:9000/")
	assert.Error(t, err)
}
