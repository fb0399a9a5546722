// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/slabworks/cardscan/db/ent/schema"
	"github.com/slabworks/cardscan/gen/ent/batch"
	"github.com/slabworks/cardscan/gen/ent/cardpair"
	"github.com/slabworks/cardscan/gen/ent/job"
	"github.com/slabworks/cardscan/gen/ent/jobevent"
	"github.com/slabworks/cardscan/gen/ent/upload"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[2].Descriptor()
	// batch.DefaultStatus holds the default value on creation for the status field.
	batch.DefaultStatus = batchDescStatus.Default.(string)
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = batchDescStatus.Validators[0].(func(string) error)
	// batchDescTotalFiles is the schema descriptor for total_files field.
	batchDescTotalFiles := batchFields[3].Descriptor()
	// batch.DefaultTotalFiles holds the default value on creation for the total_files field.
	batch.DefaultTotalFiles = batchDescTotalFiles.Default.(int)
	// batch.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	batch.TotalFilesValidator = batchDescTotalFiles.Validators[0].(func(int) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[4].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescUpdatedAt is the schema descriptor for updated_at field.
	batchDescUpdatedAt := batchFields[5].Descriptor()
	// batch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batch.DefaultUpdatedAt = batchDescUpdatedAt.Default.(func() time.Time)
	// batch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batch.UpdateDefaultUpdatedAt = batchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	cardpairFields := schema.CardPair{}.Fields()
	_ = cardpairFields
	// cardpairDescStatus is the schema descriptor for status field.
	cardpairDescStatus := cardpairFields[5].Descriptor()
	// cardpair.DefaultStatus holds the default value on creation for the status field.
	cardpair.DefaultStatus = cardpairDescStatus.Default.(string)
	// cardpair.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	cardpair.StatusValidator = cardpairDescStatus.Validators[0].(func(string) error)
	// cardpairDescMethod is the schema descriptor for method field.
	cardpairDescMethod := cardpairFields[6].Descriptor()
	// cardpair.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	cardpair.MethodValidator = cardpairDescMethod.Validators[0].(func(string) error)
	// cardpairDescConfidence is the schema descriptor for confidence field.
	cardpairDescConfidence := cardpairFields[7].Descriptor()
	// cardpair.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	cardpair.ConfidenceValidator = func() func(float32) error {
		validators := cardpairDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cardpairDescCreatedAt is the schema descriptor for created_at field.
	cardpairDescCreatedAt := cardpairFields[13].Descriptor()
	// cardpair.DefaultCreatedAt holds the default value on creation for the created_at field.
	cardpair.DefaultCreatedAt = cardpairDescCreatedAt.Default.(func() time.Time)
	// cardpairDescID is the schema descriptor for id field.
	cardpairDescID := cardpairFields[0].Descriptor()
	// cardpair.DefaultID holds the default value on creation for the id field.
	cardpair.DefaultID = cardpairDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescType is the schema descriptor for type field.
	jobDescType := jobFields[3].Descriptor()
	// job.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	job.TypeValidator = func() func(string) error {
		validators := jobDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[4].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobeventFields := schema.JobEvent{}.Fields()
	_ = jobeventFields
	// jobeventDescKind is the schema descriptor for kind field.
	jobeventDescKind := jobeventFields[2].Descriptor()
	// jobevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	jobevent.KindValidator = func() func(string) error {
		validators := jobeventDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobeventDescSeq is the schema descriptor for seq field.
	jobeventDescSeq := jobeventFields[4].Descriptor()
	// jobevent.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	jobevent.SeqValidator = jobeventDescSeq.Validators[0].(func(int) error)
	// jobeventDescCreatedAt is the schema descriptor for created_at field.
	jobeventDescCreatedAt := jobeventFields[5].Descriptor()
	// jobevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobevent.DefaultCreatedAt = jobeventDescCreatedAt.Default.(func() time.Time)
	// jobeventDescID is the schema descriptor for id field.
	jobeventDescID := jobeventFields[0].Descriptor()
	// jobevent.DefaultID holds the default value on creation for the id field.
	jobevent.DefaultID = jobeventDescID.Default.(func() uuid.UUID)
	uploadFields := schema.Upload{}.Fields()
	_ = uploadFields
	// uploadDescFilename is the schema descriptor for filename field.
	uploadDescFilename := uploadFields[3].Descriptor()
	// upload.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	upload.FilenameValidator = uploadDescFilename.Validators[0].(func(string) error)
	// uploadDescSequenceIndex is the schema descriptor for sequence_index field.
	uploadDescSequenceIndex := uploadFields[4].Descriptor()
	// upload.SequenceIndexValidator is a validator for the "sequence_index" field. It is called by the builders before save.
	upload.SequenceIndexValidator = uploadDescSequenceIndex.Validators[0].(func(int) error)
	// uploadDescStorageKey is the schema descriptor for storage_key field.
	uploadDescStorageKey := uploadFields[5].Descriptor()
	// upload.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	upload.StorageKeyValidator = uploadDescStorageKey.Validators[0].(func(string) error)
	// uploadDescStatus is the schema descriptor for status field.
	uploadDescStatus := uploadFields[6].Descriptor()
	// upload.DefaultStatus holds the default value on creation for the status field.
	upload.DefaultStatus = uploadDescStatus.Default.(string)
	// upload.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	upload.StatusValidator = uploadDescStatus.Validators[0].(func(string) error)
	// uploadDescCreatedAt is the schema descriptor for created_at field.
	uploadDescCreatedAt := uploadFields[8].Descriptor()
	// upload.DefaultCreatedAt holds the default value on creation for the created_at field.
	upload.DefaultCreatedAt = uploadDescCreatedAt.Default.(func() time.Time)
	// uploadDescID is the schema descriptor for id field.
	uploadDescID := uploadFields[0].Descriptor()
	// upload.DefaultID holds the default value on creation for the id field.
	upload.DefaultID = uploadDescID.Default.(func() uuid.UUID)
}
