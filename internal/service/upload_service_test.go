package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wearly-be/internal/dto"
	"wearly-be/internal/store"
	"wearly-be/pkg/stylist"
)

func TestUploadRejectsOversizedFileBeforeNetwork(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewUploadService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	data := bytes.Repeat([]byte{0xff}, 11<<20) // 11 MiB
	_, err := svc.UploadUserImage(context.Background(), sess, "big.jpg", "image/jpeg", data)

	var validationErr *dto.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "10MB")
	assert.Zero(t, atomic.LoadInt64(&calls), "no network call may happen for an oversized file")
}

func TestUploadRejectsUnsupportedTypeBeforeNetwork(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewUploadService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	_, err := svc.UploadUserImage(context.Background(), sess, "anim.gif", "image/gif", []byte("gif"))

	var validationErr *dto.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "JPEG, PNG, and WebP")
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestUploadSuccessCachesImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"imageId": "img-1",
			"url":     "https://cdn/img-1.jpg",
		})
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewUploadService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	res, err := svc.UploadUserImage(context.Background(), sess, "me.png", "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "img-1", res.ImageId)

	stored, _ := sessions.Get(sess.Id)
	assert.Equal(t, "me.png", stored.SelectedPhoto)
	assert.Equal(t, "img-1", stored.UserImageId)
	assert.Equal(t, "https://cdn/img-1.jpg", stored.UserImageURL)
}

func TestUploadRollsBackSelectedPhotoOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "storage full"})
	}))
	defer srv.Close()

	sessions := store.NewSessionStore(time.Hour)
	sess := newTestSession(sessions)
	svc := NewUploadService(stylist.NewClient(srv.URL), sessions, nopLogger{})

	_, err := svc.UploadUserImage(context.Background(), sess, "me.webp", "image/webp", []byte("webp"))

	var apiErr *stylist.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

	// A failed upload must not leave a photo looking selected.
	stored, _ := sessions.Get(sess.Id)
	assert.Empty(t, stored.SelectedPhoto)
	assert.Empty(t, stored.UserImageId)
}
