package main

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/drivers/database"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/drivers/logger"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/classifications"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/templates"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/users"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Seeds the DESDE-LTC classification taxonomy, the bootstrap admin account
// and the baseline basic-data template. Safe to run repeatedly: the taxonomy
// is upserted by code and the admin/template are only created when missing.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbName := driverConfig.MongoDB.DbName
	classificationRepository := classifications.NewClassificationMongoRepository(mongoDB, dbName)
	userRepository := users.NewUserMongoRepository(mongoDB, dbName)
	templateRepository := templates.NewTemplateMongoRepository(mongoDB, dbName)

	seedClassifications(ctx, log, classificationRepository)
	seedAdminUser(ctx, log, userRepository)
	seedBasicDataTemplate(ctx, log, templateRepository)

	log.Info("Seeding completed")
}

func seedClassifications(ctx context.Context, log *logrus.Logger, repo classifications.ClassificationRepository) {
	now := time.Now()

	mtcs := []models.MainTypeOfCare{
		{Code: "R", Name: "Residential Care", Description: "Facilities that provide beds overnight for care related to mental health conditions", IsHealthcare: true, ServiceDeliveryType: models.DeliveryResidential, Level: 1},
		{Code: "R2", Name: "Acute Hospital Care 24h Physician Cover", Description: "Acute residential care with round the clock physician coverage", ParentCode: "R", IsHealthcare: true, ServiceDeliveryType: models.DeliveryResidential, Level: 2},
		{Code: "R4", Name: "Acute Non-hospital Care", Description: "Acute residential care outside hospital settings", ParentCode: "R", IsHealthcare: true, ServiceDeliveryType: models.DeliveryResidential, Level: 2},
		{Code: "R8", Name: "Non-acute Hospital Residential Care", Description: "Time-unlimited hospital residential care for non-acute conditions", ParentCode: "R", IsHealthcare: true, ServiceDeliveryType: models.DeliveryResidential, Level: 2},
		{Code: "R11", Name: "Non-acute Community Residential Care 24h Support", Description: "Community homes with round the clock support staff", ParentCode: "R", IsHealthcare: false, ServiceDeliveryType: models.DeliveryResidential, Level: 2},

		{Code: "D", Name: "Day Care", Description: "Structured activities provided to groups of users during the day", IsHealthcare: true, ServiceDeliveryType: models.DeliveryDayCare, Level: 1},
		{Code: "D1", Name: "Acute Day Care", Description: "Day care available within 72 hours for acute episodes", ParentCode: "D", IsHealthcare: true, ServiceDeliveryType: models.DeliveryDayCare, Level: 2},
		{Code: "D4", Name: "Work-related Day Care", Description: "Day care oriented towards paid employment", ParentCode: "D", IsHealthcare: false, ServiceDeliveryType: models.DeliveryDayCare, Level: 2},
		{Code: "D8", Name: "Structured Non-work Day Care", Description: "High intensity structured day activities not related to work", ParentCode: "D", IsHealthcare: false, ServiceDeliveryType: models.DeliveryDayCare, Level: 2},

		{Code: "O", Name: "Outpatient Care", Description: "Care delivered through contact between staff and users outside residential and day care", IsHealthcare: true, ServiceDeliveryType: models.DeliveryOutpatient, Level: 1},
		{Code: "O2", Name: "Acute Mobile Outpatient Care", Description: "Acute outpatient care delivered at the user's location", ParentCode: "O", IsHealthcare: true, ServiceDeliveryType: models.DeliveryOutpatient, Level: 2},
		{Code: "O5", Name: "Non-acute Mobile Outpatient Care High Intensity", Description: "Mobile continuing care with contact three or more times per week", ParentCode: "O", IsHealthcare: true, ServiceDeliveryType: models.DeliveryOutpatient, Level: 2},
		{Code: "O8", Name: "Non-acute Non-mobile Outpatient Care Medium Intensity", Description: "Clinic based continuing care with contact at least every two weeks", ParentCode: "O", IsHealthcare: true, ServiceDeliveryType: models.DeliveryOutpatient, Level: 2},
		{Code: "O9", Name: "Non-acute Non-mobile Outpatient Care Low Intensity", Description: "Clinic based continuing care with contact less than every two weeks", ParentCode: "O", IsHealthcare: true, ServiceDeliveryType: models.DeliveryOutpatient, Level: 2},

		{Code: "A", Name: "Accessibility to Care", Description: "Services that facilitate access of users to other types of care", IsHealthcare: false, ServiceDeliveryType: models.DeliveryAccessibility, Level: 1},
		{Code: "A1", Name: "Communication Accessibility", Description: "Interpretation and communication support services", ParentCode: "A", IsHealthcare: false, ServiceDeliveryType: models.DeliveryAccessibility, Level: 2},
		{Code: "A4", Name: "Case Coordination", Description: "Coordination of care across providers without direct care provision", ParentCode: "A", IsHealthcare: false, ServiceDeliveryType: models.DeliveryAccessibility, Level: 2},

		{Code: "I", Name: "Information for Care", Description: "Services that provide users with information and assessment of needs", IsHealthcare: false, ServiceDeliveryType: models.DeliveryInformation, Level: 1},
		{Code: "I1", Name: "Guidance and Assessment", Description: "Assessment of user needs with referral guidance", ParentCode: "I", IsHealthcare: false, ServiceDeliveryType: models.DeliveryInformation, Level: 2},
		{Code: "I2", Name: "General Information", Description: "Provision of general information on available care", ParentCode: "I", IsHealthcare: false, ServiceDeliveryType: models.DeliveryInformation, Level: 2},
	}

	for i := range mtcs {
		mtcs[i].IsActive = true
		mtcs[i].CreatedAt = now
		mtcs[i].UpdatedAt = now
		if err := repo.UpsertMTC(ctx, &mtcs[i]); err != nil {
			log.WithError(err).WithField("code", mtcs[i].Code).Fatal("Failed to upsert MTC code")
		}
	}
	log.WithField("count", len(mtcs)).Info("Upserted MTC codes")

	bsics := []models.BasicStableInputsOfCare{
		{Code: "B1", Name: "Premises", Description: "Physical facilities where care is delivered"},
		{Code: "B2", Name: "Qualified Staff", Description: "Personnel with formal qualification in health or social care"},
		{Code: "B3", Name: "Unqualified Staff", Description: "Personnel without formal qualification in health or social care"},
		{Code: "B4", Name: "Stable Funding", Description: "Funding guaranteed for at least three years"},
		{Code: "B5", Name: "Temporary Funding", Description: "Funding guaranteed for less than three years"},
	}

	for i := range bsics {
		bsics[i].IsActive = true
		bsics[i].CreatedAt = now
		bsics[i].UpdatedAt = now
		if err := repo.UpsertBSIC(ctx, &bsics[i]); err != nil {
			log.WithError(err).WithField("code", bsics[i].Code).Fatal("Failed to upsert BSIC code")
		}
	}
	log.WithField("count", len(bsics)).Info("Upserted BSIC codes")
}

func seedAdminUser(ctx context.Context, log *logrus.Logger, repo users.UserRepository) {
	email := utils.GetEnvString("SEED_ADMIN_EMAIL", "admin@atlaskeswa.id")

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Fatal("Failed to look up admin user")
	}
	if existing != nil {
		log.WithField("email", email).Info("Admin user already exists, skipping")
		return
	}

	password := utils.GetEnvString("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Warn("SEED_ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.WithError(err).Fatal("Failed to hash admin password")
	}

	now := time.Now()
	admin := &models.User{
		Email:    email,
		Username: email,
		Password: hashed,
		FullName: "Atlas Keswa Administrator",
		Role:     constvars.RoleAdmin,
		IsActive: true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := repo.CreateUser(ctx, admin)
	if err != nil {
		log.WithError(err).Fatal("Failed to create admin user")
	}
	log.WithFields(logrus.Fields{"email": email, "userId": userID}).Info("Created admin user")
}

func seedBasicDataTemplate(ctx context.Context, log *logrus.Logger, repo templates.TemplateRepository) {
	const (
		code    = "BASIC_DATA"
		version = "1.0.0"
	)

	existing, err := repo.FindByCodeAndVersion(ctx, code, version)
	if err != nil {
		log.WithError(err).Fatal("Failed to look up basic-data template")
	}
	if existing != nil {
		log.WithField("code", code).Info("Basic-data template already exists, skipping")
		return
	}

	tmpl := &questionnaire.Template{
		Code:        code,
		Name:        "Data Dasar Layanan",
		Description: "Identitas, lokasi dan kontak layanan kesehatan jiwa",
		Version:     version,
		Type:        questionnaire.TemplateTypeBasicData,
		IsActive:    true,
		Sections: []questionnaire.Section{
			{
				ID:    "sec-identity",
				Code:  "IDENTITY",
				Name:  "Identitas Layanan",
				Order: 1,
				Questions: []questionnaire.Question{
					{ID: "q-name", Code: "SERVICE_NAME", Text: "Nama layanan", AnswerType: questionnaire.AnswerTypeText, IsRequired: true, Order: 1},
					{ID: "q-org", Code: "ORGANIZATION", Text: "Nama organisasi penyelenggara", AnswerType: questionnaire.AnswerTypeText, IsRequired: true, Order: 2},
					{
						ID: "q-legal", Code: "HAS_LEGAL_ENTITY", Text: "Apakah layanan berbadan hukum?",
						AnswerType: questionnaire.AnswerTypeBoolean, IsRequired: true, Order: 3,
					},
					{
						ID: "q-legal-number", Code: "LEGAL_ENTITY_NUMBER", Text: "Nomor badan hukum",
						AnswerType: questionnaire.AnswerTypeText, Order: 4,
						ParentQuestionCode: "HAS_LEGAL_ENTITY", ShowIfValue: true,
					},
				},
			},
			{
				ID:    "sec-location",
				Code:  "LOCATION",
				Name:  "Lokasi",
				Order: 2,
				Questions: []questionnaire.Question{
					{ID: "q-address", Code: "ADDRESS", Text: "Alamat lengkap", AnswerType: questionnaire.AnswerTypeTextArea, IsRequired: true, Order: 1},
					{ID: "q-geo", Code: "GEO_AREA", Text: "Wilayah administratif", AnswerType: questionnaire.AnswerTypeGeoFull, IsRequired: true, Order: 2},
					{ID: "q-gps", Code: "GPS_POINT", Text: "Titik koordinat", AnswerType: questionnaire.AnswerTypeGPS, Order: 3},
				},
			},
			{
				ID:    "sec-contact",
				Code:  "CONTACT",
				Name:  "Kontak",
				Order: 3,
				Questions: []questionnaire.Question{
					{ID: "q-phone", Code: "PHONE", Text: "Nomor telepon", AnswerType: questionnaire.AnswerTypePhone, Order: 1},
					{ID: "q-email", Code: "EMAIL", Text: "Alamat email", AnswerType: questionnaire.AnswerTypeEmail, Order: 2},
					{ID: "q-web", Code: "WEBSITE", Text: "Situs web", AnswerType: questionnaire.AnswerTypeUrl, Order: 3},
				},
			},
		},
	}

	templateID, err := repo.CreateTemplate(ctx, tmpl)
	if err != nil {
		log.WithError(err).Fatal("Failed to create basic-data template")
	}
	log.WithFields(logrus.Fields{"code": code, "templateId": templateID}).Info("Created basic-data template")
}
