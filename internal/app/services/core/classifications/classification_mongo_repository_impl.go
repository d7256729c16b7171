package classifications

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassificationMongoRepository struct {
	MTCCollection  *mongo.Collection
	BSICCollection *mongo.Collection
}

func NewClassificationMongoRepository(db *mongo.Client, dbName string) ClassificationRepository {
	return &ClassificationMongoRepository{
		MTCCollection:  db.Database(dbName).Collection(constvars.MongoCollectionMTC),
		BSICCollection: db.Database(dbName).Collection(constvars.MongoCollectionBSIC),
	}
}

func (r *ClassificationMongoRepository) FindAllMTC(ctx context.Context, deliveryType string) ([]models.MainTypeOfCare, error) {
	filter := bson.M{"isActive": true}
	if deliveryType != "" {
		filter["serviceDeliveryType"] = deliveryType
	}

	cursor, err := r.MTCCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var items []models.MainTypeOfCare
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *ClassificationMongoRepository) FindMTCByCode(ctx context.Context, code string) (*models.MainTypeOfCare, error) {
	var item models.MainTypeOfCare
	err := r.MTCCollection.FindOne(ctx, bson.M{"code": code}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *ClassificationMongoRepository) FindMTCByParentCode(ctx context.Context, parentCode string) ([]models.MainTypeOfCare, error) {
	cursor, err := r.MTCCollection.Find(ctx,
		bson.M{"parentCode": parentCode, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "code", Value: 1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var items []models.MainTypeOfCare
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *ClassificationMongoRepository) FindAllBSIC(ctx context.Context) ([]models.BasicStableInputsOfCare, error) {
	cursor, err := r.BSICCollection.Find(ctx,
		bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "code", Value: 1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var items []models.BasicStableInputsOfCare
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *ClassificationMongoRepository) FindBSICByCode(ctx context.Context, code string) (*models.BasicStableInputsOfCare, error) {
	var item models.BasicStableInputsOfCare
	err := r.BSICCollection.FindOne(ctx, bson.M{"code": code}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *ClassificationMongoRepository) UpsertMTC(ctx context.Context, mtc *models.MainTypeOfCare) error {
	update := bson.M{"$set": bson.M{
		"name":                mtc.Name,
		"description":         mtc.Description,
		"parentCode":          mtc.ParentCode,
		"isHealthcare":        mtc.IsHealthcare,
		"serviceDeliveryType": mtc.ServiceDeliveryType,
		"level":               mtc.Level,
		"isActive":            mtc.IsActive,
		"updatedAt":           mtc.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"createdAt": mtc.CreatedAt,
	}}

	_, err := r.MTCCollection.UpdateOne(ctx, bson.M{"code": mtc.Code}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ClassificationMongoRepository) UpsertBSIC(ctx context.Context, bsic *models.BasicStableInputsOfCare) error {
	update := bson.M{"$set": bson.M{
		"name":        bsic.Name,
		"description": bsic.Description,
		"isActive":    bsic.IsActive,
		"updatedAt":   bsic.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"createdAt": bsic.CreatedAt,
	}}

	_, err := r.BSICCollection.UpdateOne(ctx, bson.M{"code": bsic.Code}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
