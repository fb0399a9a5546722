// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "total_files", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[1], BatchesColumns[4]},
			},
		},
	}
	// CardPairsColumns holds the columns for the "card_pairs" table.
	CardPairsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "front_upload_id", Type: field.TypeUUID},
		{Name: "back_upload_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PAIRED"},
		{Name: "method", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "field_confidence", Type: field.TypeJSON, Nullable: true},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "token_usage", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// CardPairsTable holds the schema information for the "card_pairs" table.
	CardPairsTable = &schema.Table{
		Name:       "card_pairs",
		Columns:    CardPairsColumns,
		PrimaryKey: []*schema.Column{CardPairsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "card_pairs_batches_pairs",
				Columns:    []*schema.Column{CardPairsColumns[13]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cardpair_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{CardPairsColumns[13], CardPairsColumns[4]},
			},
			{
				Name:    "cardpair_front_upload_id",
				Unique:  false,
				Columns: []*schema.Column{CardPairsColumns[2]},
			},
			{
				Name:    "cardpair_back_upload_id",
				Unique:  false,
				Columns: []*schema.Column{CardPairsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_batches_jobs",
				Columns:    []*schema.Column{JobsColumns[10]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[7]},
			},
			{
				Name:    "job_batch_id_type_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[10], JobsColumns[2], JobsColumns[3]},
			},
			{
				Name:    "job_batch_id_type",
				Unique:  true,
				Columns: []*schema.Column{JobsColumns[10], JobsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('QUEUED', 'PROCESSING')",
				},
			},
		},
	}
	// JobEventsColumns holds the columns for the "job_events" table.
	JobEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobEventsTable holds the schema information for the "job_events" table.
	JobEventsTable = &schema.Table{
		Name:       "job_events",
		Columns:    JobEventsColumns,
		PrimaryKey: []*schema.Column{JobEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_events_jobs_events",
				Columns:    []*schema.Column{JobEventsColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobevent_job_id_seq",
				Unique:  true,
				Columns: []*schema.Column{JobEventsColumns[5], JobEventsColumns[3]},
			},
		},
	}
	// UploadsColumns holds the columns for the "uploads" table.
	UploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "sequence_index", Type: field.TypeInt},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "UNASSIGNED"},
		{Name: "orphan_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// UploadsTable holds the schema information for the "uploads" table.
	UploadsTable = &schema.Table{
		Name:       "uploads",
		Columns:    UploadsColumns,
		PrimaryKey: []*schema.Column{UploadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "uploads_batches_uploads",
				Columns:    []*schema.Column{UploadsColumns[8]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "upload_batch_id_sequence_index",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[8], UploadsColumns[3]},
			},
			{
				Name:    "upload_owner_id",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		CardPairsTable,
		JobsTable,
		JobEventsTable,
		UploadsTable,
	}
)

func init() {
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	CardPairsTable.ForeignKeys[0].RefTable = BatchesTable
	CardPairsTable.Annotation = &entsql.Annotation{
		Table: "card_pairs",
	}
	JobsTable.ForeignKeys[0].RefTable = BatchesTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobEventsTable.ForeignKeys[0].RefTable = JobsTable
	JobEventsTable.Annotation = &entsql.Annotation{
		Table: "job_events",
	}
	UploadsTable.ForeignKeys[0].RefTable = BatchesTable
	UploadsTable.Annotation = &entsql.Annotation{
		Table: "uploads",
	}
}
