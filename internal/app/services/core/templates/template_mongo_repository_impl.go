package templates

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewTemplateMongoRepository(db *mongo.Client, dbName string) TemplateRepository {
	return &TemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSurveyTemplates),
	}
}

func (r *TemplateMongoRepository) CreateTemplate(ctx context.Context, tmpl *questionnaire.Template) (string, error) {
	result, err := r.Collection.InsertOne(ctx, tmpl)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*questionnaire.Template, error) {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var tmpl questionnaire.Template
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&tmpl)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tmpl, nil
}

func (r *TemplateMongoRepository) FindByCodeAndVersion(ctx context.Context, code, version string) (*questionnaire.Template, error) {
	var tmpl questionnaire.Template
	err := r.Collection.FindOne(ctx, bson.M{"code": code, "version": version}).Decode(&tmpl)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tmpl, nil
}

func (r *TemplateMongoRepository) UpdateTemplate(ctx context.Context, tmpl *questionnaire.Template) error {
	objectID, err := primitive.ObjectIDFromHex(tmpl.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":         tmpl.Name,
		"description":  tmpl.Description,
		"version":      tmpl.Version,
		"templateType": tmpl.Type,
		"targetMtc":    tmpl.TargetMTC,
		"isActive":     tmpl.IsActive,
		"sections":     tmpl.Sections,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TemplateMongoRepository) FindAll(ctx context.Context, request *requests.ListTemplates) ([]questionnaire.Template, int, error) {
	filter := bson.M{}
	if request.Type != "" {
		filter["templateType"] = request.Type
	}
	if request.ActiveOnly {
		filter["isActive"] = true
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64(request.Offset())).
		SetLimit(int64(request.PageSize)).
		SetSort(bson.D{{Key: "code", Value: 1}, {Key: "version", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var items []questionnaire.Template
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, int(total), nil
}
