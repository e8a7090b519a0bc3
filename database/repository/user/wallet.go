// File: database/repository/user/wallet.go
package userRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateWalletBalance writes the synced balance and timestamp. The filter is
// the user id only, never the wallet address, so a sync can not cross over
// into another account's record.
func (r *MongoUserRepo) UpdateWalletBalance(id string, balance float64, syncedAt time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"tokenBalance":    balance,
		"balanceSyncedAt": syncedAt,
		"updatedAt":       time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update wallet balance for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// IncrementTokenBalance credits purchased tokens with a single $inc.
func (r *MongoUserRepo) IncrementTokenBalance(id string, delta float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"tokenBalance": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to credit tokens for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetTokenHash stores the hash of the current auth token; empty clears it.
func (r *MongoUserRepo) SetTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set token hash for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// newFindOneOptions converts an optional projection into FindOne options.
func newFindOneOptions(projection bson.M) *options.FindOneOptions {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	return opts
}
