package surveys

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditLogMongoRepository(db *mongo.Client, dbName string) AuditLogRepository {
	return &AuditLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSurveyAuditLogs),
	}
}

func (r *AuditLogMongoRepository) CreateAuditLog(ctx context.Context, logModel *models.SurveyAuditLog) error {
	_, err := r.Collection.InsertOne(ctx, logModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AuditLogMongoRepository) FindAuditLogsBySurveyID(ctx context.Context, surveyID string) ([]models.SurveyAuditLog, error) {
	cursor, err := r.Collection.Find(ctx,
		bson.M{"surveyId": surveyID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var logs []models.SurveyAuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return logs, nil
}
