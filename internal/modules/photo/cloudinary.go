package photo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

const cloudinaryFolder = "autoloc/vehicles"

// CloudinaryStore uploads images to Cloudinary through its unsigned
// upload endpoint. Only the returned CDN URL is persisted; the binary
// never touches our storage.
type CloudinaryStore struct {
	cloudName    string
	uploadPreset string
	http         *http.Client
}

func NewCloudinaryStore(cloudName, uploadPreset string) *CloudinaryStore {
	return &CloudinaryStore{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		http:         &http.Client{Timeout: 30 * time.Second},
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *CloudinaryStore) Store(ctx context.Context, data []byte, filename string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := w.WriteField("upload_preset", s.uploadPreset); err != nil {
		return "", err
	}
	if err := w.WriteField("folder", cloudinaryFolder); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var parsed cloudinaryResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary: %s", parsed.Error.Message)
	}
	return parsed.SecureURL, nil
}
