package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

const collectionPresensi = "presensi"

type PresensiRepository struct {
	coll *mongo.Collection
}

func NewPresensiRepository(db *mongo.Database) *PresensiRepository {
	return &PresensiRepository{coll: db.Collection(collectionPresensi)}
}

// Insert relies on the unique (id_jamaah, id_kajian) index to reject a
// second record for the same pair.
func (r *PresensiRepository) Insert(ctx context.Context, p *domain.Presensi) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyRecorded
		}
		return fmt.Errorf("insert presensi: %w", err)
	}
	return nil
}

func (r *PresensiRepository) FindByPair(ctx context.Context, jamaahID, kajianID string) (*domain.Presensi, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Presensi
	filter := bson.M{"id_jamaah": jamaahID, "id_kajian": kajianID}
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPresensiNotFound
		}
		return nil, fmt.Errorf("find presensi: %w", err)
	}
	return &p, nil
}

func (r *PresensiRepository) ListByKajian(ctx context.Context, kajianID string) ([]*domain.Presensi, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "waktu_presensi", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"id_kajian": kajianID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list presensi: %w", err)
	}
	docs := make([]*domain.Presensi, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode presensi: %w", err)
	}
	return docs, nil
}
