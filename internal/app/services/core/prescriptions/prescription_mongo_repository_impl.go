package prescriptions

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	now := time.Now()
	prescription.CreatedAt = now
	prescription.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var prescription models.Prescription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Prescription, int, error) {
	filter := bson.M{}
	if params.PatientID != "" {
		filter["patientId"] = params.PatientID
	}
	if params.DoctorID != "" {
		filter["doctorId"] = params.DoctorID
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var prescriptionList []models.Prescription
	if err := cursor.All(ctx, &prescriptionList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptionList, int(total), nil
}
