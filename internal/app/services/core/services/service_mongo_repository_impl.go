package services

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Client, dbName string) ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (r *ServiceMongoRepository) CreateService(ctx context.Context, serviceModel *models.Service) (string, error) {
	result, err := r.Collection.InsertOne(ctx, serviceModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ServiceMongoRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var service models.Service
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (r *ServiceMongoRepository) UpdateService(ctx context.Context, serviceModel *models.Service) error {
	objectID, err := primitive.ObjectIDFromHex(serviceModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	doc, err := bson.Marshal(serviceModel)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	var asMap bson.M
	if err := bson.Unmarshal(doc, &asMap); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	delete(asMap, "_id")

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": asMap}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ServiceMongoRepository) FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, int, error) {
	filter := bson.M{"isActive": true}
	if request.City != "" {
		filter["city"] = bson.M{"$regex": request.City, "$options": "i"}
	}
	if request.MTCCode != "" {
		filter["mtcCode"] = request.MTCCode
	}
	if request.Verified != nil {
		filter["isVerified"] = *request.Verified
	}
	if request.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": request.Search, "$options": "i"}},
			{"description": bson.M{"$regex": request.Search, "$options": "i"}},
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64(request.Offset())).
		SetLimit(int64(request.PageSize)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var items []models.Service
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, int(total), nil
}
