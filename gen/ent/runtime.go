// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/loanguard/loanguard/db/ent/schema"
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	complianceeventFields := schema.ComplianceEvent{}.Fields()
	_ = complianceeventFields
	// complianceeventDescRequirementID is the schema descriptor for requirement_id field.
	complianceeventDescRequirementID := complianceeventFields[2].Descriptor()
	// complianceevent.RequirementIDValidator is a validator for the "requirement_id" field. It is called by the builders before save.
	complianceevent.RequirementIDValidator = complianceeventDescRequirementID.Validators[0].(func(string) error)
	// complianceeventDescEventType is the schema descriptor for event_type field.
	complianceeventDescEventType := complianceeventFields[3].Descriptor()
	// complianceevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	complianceevent.EventTypeValidator = func() func(string) error {
		validators := complianceeventDescEventType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(event_type string) error {
			for _, fn := range fns {
				if err := fn(event_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// complianceeventDescEventDate is the schema descriptor for event_date field.
	complianceeventDescEventDate := complianceeventFields[4].Descriptor()
	// complianceevent.DefaultEventDate holds the default value on creation for the event_date field.
	complianceevent.DefaultEventDate = complianceeventDescEventDate.Default.(func() time.Time)
	// complianceeventDescOldStatus is the schema descriptor for old_status field.
	complianceeventDescOldStatus := complianceeventFields[6].Descriptor()
	// complianceevent.OldStatusValidator is a validator for the "old_status" field. It is called by the builders before save.
	complianceevent.OldStatusValidator = complianceeventDescOldStatus.Validators[0].(func(string) error)
	// complianceeventDescNewStatus is the schema descriptor for new_status field.
	complianceeventDescNewStatus := complianceeventFields[7].Descriptor()
	// complianceevent.NewStatusValidator is a validator for the "new_status" field. It is called by the builders before save.
	complianceevent.NewStatusValidator = complianceeventDescNewStatus.Validators[0].(func(string) error)
	// complianceeventDescCreatedAt is the schema descriptor for created_at field.
	complianceeventDescCreatedAt := complianceeventFields[10].Descriptor()
	// complianceevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	complianceevent.DefaultCreatedAt = complianceeventDescCreatedAt.Default.(func() time.Time)
	// complianceeventDescID is the schema descriptor for id field.
	complianceeventDescID := complianceeventFields[0].Descriptor()
	// complianceevent.DefaultID holds the default value on creation for the id field.
	complianceevent.DefaultID = complianceeventDescID.Default.(func() uuid.UUID)
	loanFields := schema.Loan{}.Fields()
	_ = loanFields
	// loanDescLoanID is the schema descriptor for loan_id field.
	loanDescLoanID := loanFields[1].Descriptor()
	// loan.LoanIDValidator is a validator for the "loan_id" field. It is called by the builders before save.
	loan.LoanIDValidator = func() func(string) error {
		validators := loanDescLoanID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(loan_id string) error {
			for _, fn := range fns {
				if err := fn(loan_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// loanDescPropertyName is the schema descriptor for property_name field.
	loanDescPropertyName := loanFields[3].Descriptor()
	// loan.PropertyNameValidator is a validator for the "property_name" field. It is called by the builders before save.
	loan.PropertyNameValidator = loanDescPropertyName.Validators[0].(func(string) error)
	// loanDescOriginalLoanAmount is the schema descriptor for original_loan_amount field.
	loanDescOriginalLoanAmount := loanFields[6].Descriptor()
	// loan.DefaultOriginalLoanAmount holds the default value on creation for the original_loan_amount field.
	loan.DefaultOriginalLoanAmount = loanDescOriginalLoanAmount.Default.(float64)
	// loanDescOriginationDate is the schema descriptor for origination_date field.
	loanDescOriginationDate := loanFields[8].Descriptor()
	// loan.OriginationDateValidator is a validator for the "origination_date" field. It is called by the builders before save.
	loan.OriginationDateValidator = loanDescOriginationDate.Validators[0].(func(string) error)
	// loanDescMaturityDate is the schema descriptor for maturity_date field.
	loanDescMaturityDate := loanFields[9].Descriptor()
	// loan.MaturityDateValidator is a validator for the "maturity_date" field. It is called by the builders before save.
	loan.MaturityDateValidator = loanDescMaturityDate.Validators[0].(func(string) error)
	// loanDescComplianceScore is the schema descriptor for compliance_score field.
	loanDescComplianceScore := loanFields[10].Descriptor()
	// loan.DefaultComplianceScore holds the default value on creation for the compliance_score field.
	loan.DefaultComplianceScore = loanDescComplianceScore.Default.(int)
	// loan.ComplianceScoreValidator is a validator for the "compliance_score" field. It is called by the builders before save.
	loan.ComplianceScoreValidator = func() func(int) error {
		validators := loanDescComplianceScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(compliance_score int) error {
			for _, fn := range fns {
				if err := fn(compliance_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// loanDescExtractionDate is the schema descriptor for extraction_date field.
	loanDescExtractionDate := loanFields[12].Descriptor()
	// loan.DefaultExtractionDate holds the default value on creation for the extraction_date field.
	loan.DefaultExtractionDate = loanDescExtractionDate.Default.(func() time.Time)
	// loanDescCreatedAt is the schema descriptor for created_at field.
	loanDescCreatedAt := loanFields[13].Descriptor()
	// loan.DefaultCreatedAt holds the default value on creation for the created_at field.
	loan.DefaultCreatedAt = loanDescCreatedAt.Default.(func() time.Time)
	// loanDescUpdatedAt is the schema descriptor for updated_at field.
	loanDescUpdatedAt := loanFields[14].Descriptor()
	// loan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	loan.DefaultUpdatedAt = loanDescUpdatedAt.Default.(func() time.Time)
	// loan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	loan.UpdateDefaultUpdatedAt = loanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// loanDescID is the schema descriptor for id field.
	loanDescID := loanFields[0].Descriptor()
	// loan.DefaultID holds the default value on creation for the id field.
	loan.DefaultID = loanDescID.Default.(func() uuid.UUID)
	requirementFields := schema.Requirement{}.Fields()
	_ = requirementFields
	// requirementDescRequirementID is the schema descriptor for requirement_id field.
	requirementDescRequirementID := requirementFields[2].Descriptor()
	// requirement.RequirementIDValidator is a validator for the "requirement_id" field. It is called by the builders before save.
	requirement.RequirementIDValidator = func() func(string) error {
		validators := requirementDescRequirementID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(requirement_id string) error {
			for _, fn := range fns {
				if err := fn(requirement_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// requirementDescTitle is the schema descriptor for title field.
	requirementDescTitle := requirementFields[3].Descriptor()
	// requirement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	requirement.TitleValidator = requirementDescTitle.Validators[0].(func(string) error)
	// requirementDescCategory is the schema descriptor for category field.
	requirementDescCategory := requirementFields[4].Descriptor()
	// requirement.DefaultCategory holds the default value on creation for the category field.
	requirement.DefaultCategory = requirementDescCategory.Default.(string)
	// requirement.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	requirement.CategoryValidator = requirementDescCategory.Validators[0].(func(string) error)
	// requirementDescSeverity is the schema descriptor for severity field.
	requirementDescSeverity := requirementFields[11].Descriptor()
	// requirement.DefaultSeverity holds the default value on creation for the severity field.
	requirement.DefaultSeverity = requirementDescSeverity.Default.(string)
	// requirement.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	requirement.SeverityValidator = requirementDescSeverity.Validators[0].(func(string) error)
	// requirementDescStatus is the schema descriptor for status field.
	requirementDescStatus := requirementFields[12].Descriptor()
	// requirement.DefaultStatus holds the default value on creation for the status field.
	requirement.DefaultStatus = requirementDescStatus.Default.(string)
	// requirement.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	requirement.StatusValidator = requirementDescStatus.Validators[0].(func(string) error)
	// requirementDescCurePeriodDays is the schema descriptor for cure_period_days field.
	requirementDescCurePeriodDays := requirementFields[13].Descriptor()
	// requirement.CurePeriodDaysValidator is a validator for the "cure_period_days" field. It is called by the builders before save.
	requirement.CurePeriodDaysValidator = requirementDescCurePeriodDays.Validators[0].(func(int) error)
	// requirementDescCreatedAt is the schema descriptor for created_at field.
	requirementDescCreatedAt := requirementFields[16].Descriptor()
	// requirement.DefaultCreatedAt holds the default value on creation for the created_at field.
	requirement.DefaultCreatedAt = requirementDescCreatedAt.Default.(func() time.Time)
	// requirementDescUpdatedAt is the schema descriptor for updated_at field.
	requirementDescUpdatedAt := requirementFields[17].Descriptor()
	// requirement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requirement.DefaultUpdatedAt = requirementDescUpdatedAt.Default.(func() time.Time)
	// requirement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requirement.UpdateDefaultUpdatedAt = requirementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requirementDescID is the schema descriptor for id field.
	requirementDescID := requirementFields[0].Descriptor()
	// requirement.DefaultID holds the default value on creation for the id field.
	requirement.DefaultID = requirementDescID.Default.(func() uuid.UUID)
}
