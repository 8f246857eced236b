package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Loan struct{ ent.Schema }

func (Loan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "loans"},
	}
}

func (Loan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// user-facing identifier like "LOAN-001"
		field.String("loan_id").NotEmpty().Unique().MaxLen(50),
		field.String("loan_name").Optional(),
		field.String("property_name").NotEmpty(),
		field.String("borrower_name").Optional(),
		field.String("lender_name").Optional(),
		field.Float("original_loan_amount").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		field.Float("current_balance").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		// dates stay as extracted text; documents rarely carry clean ISO dates
		field.String("origination_date").Optional().Nillable().MaxLen(50),
		field.String("maturity_date").Optional().Nillable().MaxLen(50),
		field.Int("compliance_score").Default(100).Min(0).Max(100),
		field.JSON("source_documents", []string{}).Optional(),
		field.Time("extraction_date").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Loan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("requirements", Requirement.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", ComplianceEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
