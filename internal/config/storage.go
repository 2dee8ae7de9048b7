package config

import "github.com/JaimeStill/menu-lab/pkg/storage"

var storageEnv = &storage.Env{
	Driver:        "STORAGE_DRIVER",
	BasePath:      "STORAGE_BASE_PATH",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
	S3Bucket:      "STORAGE_S3_BUCKET",
	S3Region:      "STORAGE_S3_REGION",
	S3Endpoint:    "STORAGE_S3_ENDPOINT",
	S3PathStyle:   "STORAGE_S3_PATH_STYLE",
}
