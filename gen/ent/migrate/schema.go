// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ComplianceEventsColumns holds the columns for the "compliance_events" table.
	ComplianceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "requirement_id", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "event_type", Type: field.TypeString, Size: 50},
		{Name: "event_date", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "old_status", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "new_status", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "submitted_by", Type: field.TypeString, Nullable: true},
		{Name: "documents", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "loan_id", Type: field.TypeUUID},
	}
	// ComplianceEventsTable holds the schema information for the "compliance_events" table.
	ComplianceEventsTable = &schema.Table{
		Name:       "compliance_events",
		Columns:    ComplianceEventsColumns,
		PrimaryKey: []*schema.Column{ComplianceEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compliance_events_loans_events",
				Columns:    []*schema.Column{ComplianceEventsColumns[10]},
				RefColumns: []*schema.Column{LoansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// LoansColumns holds the columns for the "loans" table.
	LoansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "loan_id", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "loan_name", Type: field.TypeString, Nullable: true},
		{Name: "property_name", Type: field.TypeString},
		{Name: "borrower_name", Type: field.TypeString, Nullable: true},
		{Name: "lender_name", Type: field.TypeString, Nullable: true},
		{Name: "original_loan_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "current_balance", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "origination_date", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "maturity_date", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "compliance_score", Type: field.TypeInt, Default: 100},
		{Name: "source_documents", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LoansTable holds the schema information for the "loans" table.
	LoansTable = &schema.Table{
		Name:       "loans",
		Columns:    LoansColumns,
		PrimaryKey: []*schema.Column{LoansColumns[0]},
	}
	// RequirementsColumns holds the columns for the "requirements" table.
	RequirementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "requirement_id", Type: field.TypeString, Size: 50},
		{Name: "title", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "other"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plain_language_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "original_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "document_reference", Type: field.TypeString, Nullable: true},
		{Name: "deadline", Type: field.TypeJSON, Nullable: true},
		{Name: "threshold", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeString, Default: "medium"},
		{Name: "status", Type: field.TypeString, Default: "unknown"},
		{Name: "cure_period_days", Type: field.TypeInt, Nullable: true},
		{Name: "last_checked", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "loan_id", Type: field.TypeUUID},
	}
	// RequirementsTable holds the schema information for the "requirements" table.
	RequirementsTable = &schema.Table{
		Name:       "requirements",
		Columns:    RequirementsColumns,
		PrimaryKey: []*schema.Column{RequirementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "requirements_loans_requirements",
				Columns:    []*schema.Column{RequirementsColumns[17]},
				RefColumns: []*schema.Column{LoansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ComplianceEventsTable,
		LoansTable,
		RequirementsTable,
	}
)

func init() {
	ComplianceEventsTable.ForeignKeys[0].RefTable = LoansTable
	ComplianceEventsTable.Annotation = &entsql.Annotation{
		Table: "compliance_events",
	}
	LoansTable.Annotation = &entsql.Annotation{
		Table: "loans",
	}
	RequirementsTable.ForeignKeys[0].RefTable = LoansTable
	RequirementsTable.Annotation = &entsql.Annotation{
		Table: "requirements",
	}
}
