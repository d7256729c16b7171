package surveys

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttachmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAttachmentMongoRepository(db *mongo.Client, dbName string) AttachmentRepository {
	return &AttachmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSurveyAttachments),
	}
}

func (r *AttachmentMongoRepository) CreateAttachment(ctx context.Context, attachment *models.SurveyAttachment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, attachment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AttachmentMongoRepository) FindAttachmentsBySurveyID(ctx context.Context, surveyID string) ([]models.SurveyAttachment, error) {
	cursor, err := r.Collection.Find(ctx,
		bson.M{"surveyId": surveyID},
		options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var attachments []models.SurveyAttachment
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return attachments, nil
}
