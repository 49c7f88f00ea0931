// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "institution_id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "student_number", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_institution_id_email",
				Unique:  true,
				Columns: []*schema.Column{ApplicationsColumns[1], ApplicationsColumns[3]},
			},
			{
				Name:    "application_institution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[1], ApplicationsColumns[7]},
			},
			{
				Name:    "application_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[5]},
			},
		},
	}
	// JobRecordsColumns holds the columns for the "job_records" table.
	JobRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "total_records", Type: field.TypeInt, Default: 0},
		{Name: "processed_records", Type: field.TypeInt, Default: 0},
		{Name: "failed_records", Type: field.TypeInt, Default: 0},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "institution_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "errors", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobRecordsTable holds the schema information for the "job_records" table.
	JobRecordsTable = &schema.Table{
		Name:       "job_records",
		Columns:    JobRecordsColumns,
		PrimaryKey: []*schema.Column{JobRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "jobrecord_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobRecordsColumns[6], JobRecordsColumns[12]},
			},
			{
				Name:    "jobrecord_job_type_status",
				Unique:  false,
				Columns: []*schema.Column{JobRecordsColumns[1], JobRecordsColumns[2]},
			},
		},
	}
	// PassesColumns holds the columns for the "passes" table.
	PassesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "serial", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "ACTIVE"},
		{Name: "issued_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID, Unique: true},
	}
	// PassesTable holds the schema information for the "passes" table.
	PassesTable = &schema.Table{
		Name:       "passes",
		Columns:    PassesColumns,
		PrimaryKey: []*schema.Column{PassesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "passes_applications_pass",
				Columns:    []*schema.Column{PassesColumns[7]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pass_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PassesColumns[2], PassesColumns[4]},
			},
		},
	}
	// QueueTasksColumns holds the columns for the "queue_tasks" table.
	QueueTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "lane", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "backoff_ms", Type: field.TypeInt64, Default: 30000},
		{Name: "available_at", Type: field.TypeTime},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueueTasksTable holds the schema information for the "queue_tasks" table.
	QueueTasksTable = &schema.Table{
		Name:       "queue_tasks",
		Columns:    QueueTasksColumns,
		PrimaryKey: []*schema.Column{QueueTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuetask_lane_available_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[2], QueueTasksColumns[8]},
			},
			{
				Name:    "queuetask_job_id",
				Unique:  true,
				Columns: []*schema.Column{QueueTasksColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		JobRecordsTable,
		PassesTable,
		QueueTasksTable,
	}
)

func init() {
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	JobRecordsTable.Annotation = &entsql.Annotation{
		Table: "job_records",
	}
	PassesTable.ForeignKeys[0].RefTable = ApplicationsTable
	PassesTable.Annotation = &entsql.Annotation{
		Table: "passes",
	}
	QueueTasksTable.Annotation = &entsql.Annotation{
		Table: "queue_tasks",
	}
}
