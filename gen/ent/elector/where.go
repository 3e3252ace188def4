// Code generated by ent, DO NOT EDIT.

package elector

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/davidolu/elector-registry/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldID, id))
}

// AdminID applies equality check predicate on the "admin_id" field. It's identical to AdminIDEQ.
func AdminID(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldAdminID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldEmail, v))
}

// MatriculationNumber applies equality check predicate on the "matriculation_number" field. It's identical to MatriculationNumberEQ.
func MatriculationNumber(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldMatriculationNumber, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldFullName, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldGender, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldDepartment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldCreatedAt, v))
}

// AdminIDEQ applies the EQ predicate on the "admin_id" field.
func AdminIDEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldAdminID, v))
}

// AdminIDNEQ applies the NEQ predicate on the "admin_id" field.
func AdminIDNEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldAdminID, v))
}

// AdminIDIn applies the In predicate on the "admin_id" field.
func AdminIDIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldAdminID, vs...))
}

// AdminIDNotIn applies the NotIn predicate on the "admin_id" field.
func AdminIDNotIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldAdminID, vs...))
}

// AdminIDGT applies the GT predicate on the "admin_id" field.
func AdminIDGT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldAdminID, v))
}

// AdminIDGTE applies the GTE predicate on the "admin_id" field.
func AdminIDGTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldAdminID, v))
}

// AdminIDLT applies the LT predicate on the "admin_id" field.
func AdminIDLT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldAdminID, v))
}

// AdminIDLTE applies the LTE predicate on the "admin_id" field.
func AdminIDLTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldAdminID, v))
}

// AdminIDContains applies the Contains predicate on the "admin_id" field.
func AdminIDContains(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContains(FieldAdminID, v))
}

// AdminIDHasPrefix applies the HasPrefix predicate on the "admin_id" field.
func AdminIDHasPrefix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasPrefix(FieldAdminID, v))
}

// AdminIDHasSuffix applies the HasSuffix predicate on the "admin_id" field.
func AdminIDHasSuffix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasSuffix(FieldAdminID, v))
}

// AdminIDEqualFold applies the EqualFold predicate on the "admin_id" field.
func AdminIDEqualFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldAdminID, v))
}

// AdminIDContainsFold applies the ContainsFold predicate on the "admin_id" field.
func AdminIDContainsFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldAdminID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldEmail, v))
}

// MatriculationNumberEQ applies the EQ predicate on the "matriculation_number" field.
func MatriculationNumberEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldMatriculationNumber, v))
}

// MatriculationNumberNEQ applies the NEQ predicate on the "matriculation_number" field.
func MatriculationNumberNEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldMatriculationNumber, v))
}

// MatriculationNumberIn applies the In predicate on the "matriculation_number" field.
func MatriculationNumberIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldMatriculationNumber, vs...))
}

// MatriculationNumberNotIn applies the NotIn predicate on the "matriculation_number" field.
func MatriculationNumberNotIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldMatriculationNumber, vs...))
}

// MatriculationNumberGT applies the GT predicate on the "matriculation_number" field.
func MatriculationNumberGT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldMatriculationNumber, v))
}

// MatriculationNumberGTE applies the GTE predicate on the "matriculation_number" field.
func MatriculationNumberGTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldMatriculationNumber, v))
}

// MatriculationNumberLT applies the LT predicate on the "matriculation_number" field.
func MatriculationNumberLT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldMatriculationNumber, v))
}

// MatriculationNumberLTE applies the LTE predicate on the "matriculation_number" field.
func MatriculationNumberLTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldMatriculationNumber, v))
}

// MatriculationNumberContains applies the Contains predicate on the "matriculation_number" field.
func MatriculationNumberContains(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContains(FieldMatriculationNumber, v))
}

// MatriculationNumberHasPrefix applies the HasPrefix predicate on the "matriculation_number" field.
func MatriculationNumberHasPrefix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasPrefix(FieldMatriculationNumber, v))
}

// MatriculationNumberHasSuffix applies the HasSuffix predicate on the "matriculation_number" field.
func MatriculationNumberHasSuffix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasSuffix(FieldMatriculationNumber, v))
}

// MatriculationNumberEqualFold applies the EqualFold predicate on the "matriculation_number" field.
func MatriculationNumberEqualFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldMatriculationNumber, v))
}

// MatriculationNumberContainsFold applies the ContainsFold predicate on the "matriculation_number" field.
func MatriculationNumberContainsFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldMatriculationNumber, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldFullName, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldGender, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Elector {
	return predicate.Elector(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Elector {
	return predicate.Elector(sql.FieldContainsFold(FieldDepartment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Elector {
	return predicate.Elector(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAdmin applies the HasEdge predicate on the "admin" edge.
func HasAdmin() predicate.Elector {
	return predicate.Elector(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AdminTable, AdminColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAdminWith applies the HasEdge predicate on the "admin" edge with a given conditions (other predicates).
func HasAdminWith(preds ...predicate.Admin) predicate.Elector {
	return predicate.Elector(func(s *sql.Selector) {
		step := newAdminStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Elector) predicate.Elector {
	return predicate.Elector(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Elector) predicate.Elector {
	return predicate.Elector(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Elector) predicate.Elector {
	return predicate.Elector(sql.NotPredicates(p))
}
