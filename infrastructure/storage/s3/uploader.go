// Package s3 gerencia os arquivos de mídia enviados pelos usuários
package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// Uploader emite URLs de envio e de leitura para os arquivos de mídia
type Uploader interface {
	// PresignedUpload devolve a URL assinada para o painel enviar o arquivo
	PresignedUpload(ctx context.Context, key string) (string, error)
	// FileURL devolve a URL pública de leitura usada pela plataforma
	// de anúncios para baixar o arquivo
	FileURL(key string) string
}

type uploader struct {
	presigner *awss3.PresignClient
	bucket    string
	region    string
}

// New cria o uploader sobre o SDK da AWS
func New(client *awss3.Client, bucket, region string) Uploader {
	return &uploader{
		presigner: awss3.NewPresignClient(client),
		bucket:    bucket,
		region:    region,
	}
}

func (u *uploader) PresignedUpload(ctx context.Context, key string) (string, error) {
	request, err := u.presigner.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", errors.Wrap(err, "falha ao assinar URL de envio")
	}

	return request.URL, nil
}

func (u *uploader) FileURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
