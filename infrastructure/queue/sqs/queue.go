// Package sqs implementa a fila de tarefas assíncronas
package sqs

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// Publisher publica mensagens na fila de tarefas
type Publisher interface {
	Publish(ctx context.Context, payload interface{}) error
}

// Handler processa o corpo de uma mensagem recebida
type Handler func(ctx context.Context, body string)

// Queue publica e consome mensagens de uma fila SQS
type Queue struct {
	client   *awssqs.Client
	queueURL string
}

// New cria a fila sobre o SDK da AWS
func New(client *awssqs.Client, queueURL string) *Queue {
	return &Queue{client: client, queueURL: queueURL}
}

func (q *Queue) Publish(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "falha ao serializar mensagem")
	}

	_, err = q.client.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
	})

	return errors.Wrap(err, "falha ao publicar mensagem na fila")
}

// Consume faz o long polling da fila até o contexto ser cancelado. A
// mensagem é sempre removida da fila depois do handler, com ou sem
// sucesso: o acompanhamento do resultado fica no registro da tarefa.
func (q *Queue) Consume(ctx context.Context, handler Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		output, err := q.client.ReceiveMessage(ctx, &awssqs.ReceiveMessageInput{
			QueueUrl:            aws.String(q.queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.L.WithError(err).Error("Falha ao receber mensagens da fila")
			continue
		}

		for _, message := range output.Messages {
			handler(ctx, aws.ToString(message.Body))

			_, err := q.client.DeleteMessage(ctx, &awssqs.DeleteMessageInput{
				QueueUrl:      aws.String(q.queueURL),
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				log.L.WithError(err).Error("Falha ao remover mensagem da fila")
			}
		}
	}
}
