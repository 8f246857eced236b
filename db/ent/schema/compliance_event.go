package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ComplianceEvent struct{ ent.Schema }

func (ComplianceEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "compliance_events"},
	}
}

func (ComplianceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("loan_id", uuid.UUID{}),
		field.String("requirement_id").Optional().MaxLen(50),
		// submission, verification, breach, cure, status_change
		field.String("event_type").NotEmpty().MaxLen(50),
		field.Time("event_date").Default(time.Now),
		field.Text("description").Optional(),
		field.String("old_status").Optional().Nillable().MaxLen(20),
		field.String("new_status").Optional().Nillable().MaxLen(20),
		field.String("submitted_by").Optional().Nillable(),
		field.JSON("documents", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ComplianceEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loan", Loan.Type).
			Ref("events").
			Field("loan_id").
			Required().
			Unique(),
	}
}
