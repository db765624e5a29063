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
	defaultVehiclesTableName = "vehicles"
	vehiclesOwnerIDIndex     = "owner_id-index"
)

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	OwnerID      string `dynamodbav:"owner_id"`
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	PlateNumber  string `dynamodbav:"plate_number"`
	RegisteredAt string `dynamodbav:"registered_at"`
}

// VehicleDynamoRepository persists VehicleRef entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Ownership verification resolves by (owner, plate); the plate match is a
// filter on the owner's partition, which stays small per user.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.VehicleRef) (entities.VehicleRef, error) {
	it := toVehicleItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.VehicleRef{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.VehicleRef{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByOwnerAndPlate(ctx context.Context, ownerID, plateNumber string) (entities.VehicleRef, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		FilterExpression:       aws.String("plate_number = :plate"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid":   &types.AttributeValueMemberS{Value: ownerID},
			":plate": &types.AttributeValueMemberS{Value: plateNumber},
		},
	})
	if err != nil {
		return entities.VehicleRef{}, err
	}
	if len(out.Items) == 0 {
		return entities.VehicleRef{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.VehicleRef{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.VehicleRef, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.VehicleRef, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVehicleItem(it))
	}
	return items, nil
}

func toVehicleItem(v entities.VehicleRef) vehicleItem {
	return vehicleItem{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Brand:        v.Brand,
		Model:        v.Model,
		PlateNumber:  v.PlateNumber,
		RegisteredAt: v.RegisteredAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.VehicleRef {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	return entities.VehicleRef{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		Brand:        it.Brand,
		Model:        it.Model,
		PlateNumber:  it.PlateNumber,
		RegisteredAt: registeredAt,
	}
}
