package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spacesedan/reviewsense/internal/models"
)

// historyTTL is how long an analysis stays in the history table.
const historyTTL = 30 * 24 * time.Hour

// DynamoAPI is the part of *dynamodb.Client the history table needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type analysisItem struct {
	models.AnalysisRecord
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// AnalysisHistory stores one item per analysis, keyed by id.
type AnalysisHistory struct {
	client DynamoAPI
	table  string
}

func NewAnalysisHistory(client DynamoAPI, table string) *AnalysisHistory {
	return &AnalysisHistory{client: client, table: table}
}

func (h *AnalysisHistory) Store(ctx context.Context, record models.AnalysisRecord) error {
	item, err := attributevalue.MarshalMap(analysisItem{
		AnalysisRecord: record,
		ExpiresAt:      record.CreatedAt.Add(historyTTL).Unix(),
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to marshal analysis: %w", err)
	}

	_, err = h.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(h.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to store analysis: %w", err)
	}

	slog.Debug("[DynamoDB] Stored analysis",
		slog.String("table", h.table),
		slog.String("id", record.ID))
	return nil
}

// Ping checks that the table exists and is reachable.
func (h *AnalysisHistory) Ping(ctx context.Context) error {
	_, err := h.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(h.table),
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] describe table %s: %w", h.table, err)
	}
	return nil
}
