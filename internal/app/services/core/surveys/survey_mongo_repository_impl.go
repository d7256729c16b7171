package surveys

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SurveyMongoRepository struct {
	Collection *mongo.Collection
}

func NewSurveyMongoRepository(db *mongo.Client, dbName string) SurveyRepository {
	return &SurveyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSurveyResponses),
	}
}

func (r *SurveyMongoRepository) CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error) {
	result, err := r.Collection.InsertOne(ctx, survey)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SurveyMongoRepository) FindByID(ctx context.Context, surveyID string) (*models.SurveyResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var survey models.SurveyResponse
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&survey)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &survey, nil
}

func (r *SurveyMongoRepository) UpdateSurvey(ctx context.Context, survey *models.SurveyResponse) error {
	objectID, err := primitive.ObjectIDFromHex(survey.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"answers":          survey.Answers,
		"latitude":         survey.Latitude,
		"longitude":        survey.Longitude,
		"locationAccuracy": survey.LocationAccuracy,
		"surveyorNotes":    survey.SurveyorNotes,
		"updatedAt":        survey.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SurveyMongoRepository) UpdateStatus(ctx context.Context, surveyID string, expected questionnaire.Status, set map[string]interface{}) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	// The status guard in the filter makes the transition a compare-and-set:
	// a concurrent transition that won the race leaves MatchedCount at zero.
	filter := bson.M{"_id": objectID, "status": expected}
	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M(set)})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *SurveyMongoRepository) FindAllScoped(ctx context.Context, session *models.Session, request *requests.ListSurveys) ([]models.SurveyResponse, int, error) {
	filter := bson.M{}

	// Role scoping: surveyors see their own work, verifiers their submitted
	// queue, viewers only verified data. Admin sees everything.
	switch session.Role {
	case constvars.RoleSurveyor:
		filter["surveyorId"] = session.UserID
	case constvars.RoleVerifier:
		filter["status"] = string(questionnaire.StatusSubmitted)
		filter["$or"] = []bson.M{
			{"assignedVerifierId": session.UserID},
			{"assignedVerifierId": ""},
			{"assignedVerifierId": bson.M{"$exists": false}},
		}
	case constvars.RoleViewer:
		filter["status"] = string(questionnaire.StatusVerified)
	}

	if request.Status != "" && session.Role != constvars.RoleVerifier && session.Role != constvars.RoleViewer {
		filter["status"] = request.Status
	}
	if request.ServiceID != "" {
		filter["serviceId"] = request.ServiceID
	}
	if request.Search != "" {
		filter["surveyorNotes"] = bson.M{"$regex": request.Search, "$options": "i"}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64(request.Offset())).
		SetLimit(int64(request.PageSize)).
		SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var surveys []models.SurveyResponse
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return surveys, int(total), nil
}

func (r *SurveyMongoRepository) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{"templateId": templateID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (r *SurveyMongoRepository) CountByStatus(ctx context.Context) (map[string]int, int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	distribution := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		distribution[row.Status] = row.Count
		total += row.Count
	}
	return distribution, total, nil
}

func (r *SurveyMongoRepository) CountCreatedSince(ctx context.Context, days int) (int, error) {
	since := time.Now().AddDate(0, 0, -days)
	total, err := r.Collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(total), nil
}
