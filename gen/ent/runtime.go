// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/davidolu/elector-registry/db/ent/schema"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/elector"
	"github.com/davidolu/elector-registry/gen/ent/voterupload"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminFields := schema.Admin{}.Fields()
	_ = adminFields
	// adminDescEmail is the schema descriptor for email field.
	adminDescEmail := adminFields[1].Descriptor()
	// admin.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	admin.EmailValidator = adminDescEmail.Validators[0].(func(string) error)
	// adminDescCreatedAt is the schema descriptor for created_at field.
	adminDescCreatedAt := adminFields[2].Descriptor()
	// admin.DefaultCreatedAt holds the default value on creation for the created_at field.
	admin.DefaultCreatedAt = adminDescCreatedAt.Default.(func() time.Time)
	// adminDescID is the schema descriptor for id field.
	adminDescID := adminFields[0].Descriptor()
	// admin.DefaultID holds the default value on creation for the id field.
	admin.DefaultID = adminDescID.Default.(func() string)
	// admin.IDValidator is a validator for the "id" field. It is called by the builders before save.
	admin.IDValidator = adminDescID.Validators[0].(func(string) error)
	electorFields := schema.Elector{}.Fields()
	_ = electorFields
	// electorDescAdminID is the schema descriptor for admin_id field.
	electorDescAdminID := electorFields[1].Descriptor()
	// elector.AdminIDValidator is a validator for the "admin_id" field. It is called by the builders before save.
	elector.AdminIDValidator = electorDescAdminID.Validators[0].(func(string) error)
	// electorDescEmail is the schema descriptor for email field.
	electorDescEmail := electorFields[2].Descriptor()
	// elector.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	elector.EmailValidator = electorDescEmail.Validators[0].(func(string) error)
	// electorDescMatriculationNumber is the schema descriptor for matriculation_number field.
	electorDescMatriculationNumber := electorFields[3].Descriptor()
	// elector.MatriculationNumberValidator is a validator for the "matriculation_number" field. It is called by the builders before save.
	elector.MatriculationNumberValidator = electorDescMatriculationNumber.Validators[0].(func(string) error)
	// electorDescFullName is the schema descriptor for full_name field.
	electorDescFullName := electorFields[4].Descriptor()
	// elector.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	elector.FullNameValidator = electorDescFullName.Validators[0].(func(string) error)
	// electorDescGender is the schema descriptor for gender field.
	electorDescGender := electorFields[5].Descriptor()
	// elector.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	elector.GenderValidator = func() func(string) error {
		validators := electorDescGender.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(gender string) error {
			for _, fn := range fns {
				if err := fn(gender); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// electorDescDepartment is the schema descriptor for department field.
	electorDescDepartment := electorFields[6].Descriptor()
	// elector.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	elector.DepartmentValidator = electorDescDepartment.Validators[0].(func(string) error)
	// electorDescCreatedAt is the schema descriptor for created_at field.
	electorDescCreatedAt := electorFields[7].Descriptor()
	// elector.DefaultCreatedAt holds the default value on creation for the created_at field.
	elector.DefaultCreatedAt = electorDescCreatedAt.Default.(func() time.Time)
	// electorDescID is the schema descriptor for id field.
	electorDescID := electorFields[0].Descriptor()
	// elector.DefaultID holds the default value on creation for the id field.
	elector.DefaultID = electorDescID.Default.(func() string)
	// elector.IDValidator is a validator for the "id" field. It is called by the builders before save.
	elector.IDValidator = electorDescID.Validators[0].(func(string) error)
	voteruploadFields := schema.VoterUpload{}.Fields()
	_ = voteruploadFields
	// voteruploadDescAdminID is the schema descriptor for admin_id field.
	voteruploadDescAdminID := voteruploadFields[1].Descriptor()
	// voterupload.AdminIDValidator is a validator for the "admin_id" field. It is called by the builders before save.
	voterupload.AdminIDValidator = voteruploadDescAdminID.Validators[0].(func(string) error)
	// voteruploadDescFilePath is the schema descriptor for file_path field.
	voteruploadDescFilePath := voteruploadFields[2].Descriptor()
	// voterupload.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	voterupload.FilePathValidator = voteruploadDescFilePath.Validators[0].(func(string) error)
	// voteruploadDescFileExt is the schema descriptor for file_ext field.
	voteruploadDescFileExt := voteruploadFields[3].Descriptor()
	// voterupload.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	voterupload.FileExtValidator = voteruploadDescFileExt.Validators[0].(func(string) error)
	// voteruploadDescStatus is the schema descriptor for status field.
	voteruploadDescStatus := voteruploadFields[4].Descriptor()
	// voterupload.DefaultStatus holds the default value on creation for the status field.
	voterupload.DefaultStatus = voteruploadDescStatus.Default.(string)
	// voterupload.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	voterupload.StatusValidator = voteruploadDescStatus.Validators[0].(func(string) error)
	// voteruploadDescProcessedRecords is the schema descriptor for processed_records field.
	voteruploadDescProcessedRecords := voteruploadFields[6].Descriptor()
	// voterupload.DefaultProcessedRecords holds the default value on creation for the processed_records field.
	voterupload.DefaultProcessedRecords = voteruploadDescProcessedRecords.Default.(int)
	// voterupload.ProcessedRecordsValidator is a validator for the "processed_records" field. It is called by the builders before save.
	voterupload.ProcessedRecordsValidator = voteruploadDescProcessedRecords.Validators[0].(func(int) error)
	// voteruploadDescReason is the schema descriptor for reason field.
	voteruploadDescReason := voteruploadFields[8].Descriptor()
	// voterupload.DefaultReason holds the default value on creation for the reason field.
	voterupload.DefaultReason = voteruploadDescReason.Default.(string)
	// voteruploadDescCreatedAt is the schema descriptor for created_at field.
	voteruploadDescCreatedAt := voteruploadFields[9].Descriptor()
	// voterupload.DefaultCreatedAt holds the default value on creation for the created_at field.
	voterupload.DefaultCreatedAt = voteruploadDescCreatedAt.Default.(func() time.Time)
	// voteruploadDescUpdatedAt is the schema descriptor for updated_at field.
	voteruploadDescUpdatedAt := voteruploadFields[10].Descriptor()
	// voterupload.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	voterupload.DefaultUpdatedAt = voteruploadDescUpdatedAt.Default.(func() time.Time)
	// voterupload.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	voterupload.UpdateDefaultUpdatedAt = voteruploadDescUpdatedAt.UpdateDefault.(func() time.Time)
	// voteruploadDescID is the schema descriptor for id field.
	voteruploadDescID := voteruploadFields[0].Descriptor()
	// voterupload.DefaultID holds the default value on creation for the id field.
	voterupload.DefaultID = voteruploadDescID.Default.(func() string)
	// voterupload.IDValidator is a validator for the "id" field. It is called by the builders before save.
	voterupload.IDValidator = voteruploadDescID.Validators[0].(func(string) error)
}
