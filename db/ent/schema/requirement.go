package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/db/ent/schema/utils"
)

type Requirement struct{ ent.Schema }

func (Requirement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "requirements"},
	}
}

func (Requirement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("loan_id", uuid.UUID{}),
		// per-loan identifier like "REQ-001"
		field.String("requirement_id").NotEmpty().MaxLen(50),
		field.String("title").NotEmpty(),
		field.String("category").
			Default(string(constants.OtherCategory)).
			Validate(utils.EnumValidator(constants.CategoryStrings()...)),
		field.Text("description").Optional(),
		field.Text("plain_language_summary").Optional(),
		field.Text("original_text").Optional(),
		field.String("document_reference").Optional(),
		field.JSON("deadline", map[string]any{}).Optional(),
		field.JSON("threshold", map[string]any{}).Optional(),
		field.String("severity").
			Default(string(constants.Medium)).
			Validate(utils.EnumValidator(constants.SeverityStrings()...)),
		field.String("status").
			Default(string(constants.Unknown)).
			Validate(utils.EnumValidator(constants.StatusStrings()...)),
		field.Int("cure_period_days").Optional().Nillable().Min(0),
		field.Time("last_checked").Optional().Nillable(),
		field.Text("notes").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Requirement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("loan", Loan.Type).
			Ref("requirements").
			Field("loan_id").
			Required().
			Unique(),
	}
}
