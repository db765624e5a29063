package repository

import (
	"context"
	"time"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimsTableName = "claims"
	claimsUserIDIndex      = "user_id-index"
)

type claimItem struct {
	ClaimID      string `dynamodbav:"claim_id"`
	UserID       string `dynamodbav:"user_id"`
	VehicleID    string `dynamodbav:"vehicle_id"`
	CarBrand     string `dynamodbav:"car_brand"`
	CarModel     string `dynamodbav:"car_model"`
	CarNumber    string `dynamodbav:"car_number"`
	PriceDetails string `dynamodbav:"price_details"`
	TotalCost    string `dynamodbav:"total_cost"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ClaimDynamoRepository persists ClaimRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: claim_id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Claims are append-only; the conditional put refuses to overwrite an
// existing claim_id so a replayed commit cannot silently clobber a record.

type ClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.ClaimRecord) (entities.ClaimRecord, error) {
	it := toClaimItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ClaimRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#claim_id)"),
		ExpressionAttributeNames: map[string]string{
			"#claim_id": "claim_id",
		},
	})
	if err != nil {
		return entities.ClaimRecord{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, claimID string) (entities.ClaimRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClaimRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClaimRecord{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClaimRecord{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ClaimRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(claimsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ClaimRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it claimItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromClaimItem(it))
	}
	return items, nil
}

func toClaimItem(c entities.ClaimRecord) claimItem {
	return claimItem{
		ClaimID:      c.ClaimID,
		UserID:       c.UserID,
		VehicleID:    c.VehicleID,
		CarBrand:     c.CarBrand,
		CarModel:     c.CarModel,
		CarNumber:    c.CarNumber,
		PriceDetails: c.PriceDetails,
		TotalCost:    c.TotalCost,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClaimItem(it claimItem) entities.ClaimRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ClaimRecord{
		ClaimID:      it.ClaimID,
		UserID:       it.UserID,
		VehicleID:    it.VehicleID,
		CarBrand:     it.CarBrand,
		CarModel:     it.CarModel,
		CarNumber:    it.CarNumber,
		PriceDetails: it.PriceDetails,
		TotalCost:    it.TotalCost,
		Status:       entities.ClaimStatus(it.Status),
		CreatedAt:    createdAt,
	}
}
