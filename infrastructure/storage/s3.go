// Package storage fornece o adaptador de armazenamento de objetos usado
// para as fotos de perfil dos vendedores.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Wall-AR/sales-pulse-api/internal/config"
	"github.com/Wall-AR/sales-pulse-api/pkg/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

// AvatarStorage define as operações de armazenamento de fotos de perfil.
// A convenção de chave é {ownerId}/{nomeGerado}.{ext} dentro de um bucket fixo.
type AvatarStorage interface {
	Upload(ctx context.Context, ownerID, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// S3AvatarStorage implementa AvatarStorage sobre qualquer storage compatível
// com S3 (AWS S3, MinIO, Supabase Storage via gateway, etc.)
type S3AvatarStorage struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3AvatarStorage(cfg config.Storage) (*S3AvatarStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket de storage não configurado")
	}

	endpoint := cfg.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("endpoint de storage inválido: %w", err)
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar configuração AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &S3AvatarStorage{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: endpoint,
	}, nil
}

// Upload envia uma foto para o bucket e retorna a URL pública. O nome do
// objeto é gerado, preservando apenas a extensão do arquivo original.
func (s *S3AvatarStorage) Upload(ctx context.Context, ownerID, filename string, content io.Reader) (string, error) {
	objectName, err := utils.GenerateObjectName(filename)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar nome do objeto: %w", err)
	}

	key := fmt.Sprintf("%s/%s", ownerID, objectName)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   content,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar objeto para o storage: %w", err)
	}

	publicURL := s.PublicURL(key)

	logrus.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"key":    key,
	}).Info("Foto enviada para o storage")

	return publicURL, nil
}

// Delete remove um objeto a partir da sua URL pública
func (s *S3AvatarStorage) Delete(ctx context.Context, publicURL string) error {
	key, err := s.keyFromPublicURL(publicURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("erro ao remover objeto do storage: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"key":    key,
	}).Info("Foto removida do storage")

	return nil
}

// PublicURL deriva a URL pública de uma chave (path-style)
func (s *S3AvatarStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
}

func (s *S3AvatarStorage) keyFromPublicURL(publicURL string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", strings.TrimSuffix(s.endpoint, "/"), s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", fmt.Errorf("URL pública não pertence ao bucket configurado: %s", publicURL)
	}

	key := strings.TrimPrefix(publicURL, prefix)
	if key == "" {
		return "", fmt.Errorf("URL pública sem chave de objeto: %s", publicURL)
	}

	return key, nil
}
