package assessment

import (
	"github.com/pkg/errors"
)

// CandidateProfile - анкетные данные кандидата
type CandidateProfile struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	CurrentRole    string `json:"currentRole"`
	CurrentCompany string `json:"currentCompany"`
	CurrentSalary  string `json:"currentSalary"`
	MinimumSalary  string `json:"minimumSalary"`
	NoticePeriod   string `json:"noticePeriod"`
	RelocationOpen bool   `json:"relocationOpen"`
	Notes          string `json:"notes"`
}

type Field string

const (
	FieldName           Field = "name"
	FieldDate           Field = "date"
	FieldCurrentRole    Field = "currentRole"
	FieldCurrentCompany Field = "currentCompany"
	FieldCurrentSalary  Field = "currentSalary"
	FieldMinimumSalary  Field = "minimumSalary"
	FieldNoticePeriod   Field = "noticePeriod"
	FieldRelocationOpen Field = "relocationOpen"
	FieldNotes          Field = "notes"
)

// Fields - поля анкеты в порядке вывода
var Fields = []Field{
	FieldName,
	FieldDate,
	FieldCurrentRole,
	FieldCurrentCompany,
	FieldCurrentSalary,
	FieldMinimumSalary,
	FieldNoticePeriod,
	FieldRelocationOpen,
	FieldNotes,
}

var (
	ErrUnknownField = errors.New("неизвестное поле анкеты")
	ErrFieldType    = errors.New("неверный тип значения поля анкеты")
)

func (f Field) IsBool() bool {
	return f == FieldRelocationOpen
}

func (f Field) Valid() bool {
	for _, field := range Fields {
		if field == f {
			return true
		}
	}
	return false
}

func (p CandidateProfile) with(field Field, value interface{}) (CandidateProfile, error) {
	if !field.Valid() {
		return p, errors.Wrapf(ErrUnknownField, "%s", field)
	}
	if field.IsBool() {
		flag, ok := value.(bool)
		if !ok {
			return p, errors.Wrapf(ErrFieldType, "%s: ожидается bool, получено %T", field, value)
		}
		p.RelocationOpen = flag
		return p, nil
	}
	str, ok := value.(string)
	if !ok {
		return p, errors.Wrapf(ErrFieldType, "%s: ожидается string, получено %T", field, value)
	}
	switch field {
	case FieldName:
		p.Name = str
	case FieldDate:
		p.Date = str
	case FieldCurrentRole:
		p.CurrentRole = str
	case FieldCurrentCompany:
		p.CurrentCompany = str
	case FieldCurrentSalary:
		p.CurrentSalary = str
	case FieldMinimumSalary:
		p.MinimumSalary = str
	case FieldNoticePeriod:
		p.NoticePeriod = str
	case FieldNotes:
		p.Notes = str
	}
	return p, nil
}

// Value - значение поля анкеты (string или bool)
func (p CandidateProfile) Value(field Field) interface{} {
	switch field {
	case FieldName:
		return p.Name
	case FieldDate:
		return p.Date
	case FieldCurrentRole:
		return p.CurrentRole
	case FieldCurrentCompany:
		return p.CurrentCompany
	case FieldCurrentSalary:
		return p.CurrentSalary
	case FieldMinimumSalary:
		return p.MinimumSalary
	case FieldNoticePeriod:
		return p.NoticePeriod
	case FieldRelocationOpen:
		return p.RelocationOpen
	case FieldNotes:
		return p.Notes
	}
	return nil
}
