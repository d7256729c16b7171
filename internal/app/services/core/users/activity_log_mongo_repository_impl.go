package users

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewActivityLogMongoRepository(db *mongo.Client, dbName string) ActivityLogRepository {
	return &ActivityLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUserActivityLogs),
	}
}

func (r *ActivityLogMongoRepository) CreateActivityLog(ctx context.Context, logModel *models.UserActivityLog) error {
	_, err := r.Collection.InsertOne(ctx, logModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ActivityLogMongoRepository) FindActivityLogsByUserID(ctx context.Context, userID string, request *requests.Pagination) ([]models.UserActivityLog, int, error) {
	filter := bson.M{"userId": userID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64(request.Offset())).
		SetLimit(int64(request.PageSize)).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var logs []models.UserActivityLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return logs, int(total), nil
}
