package roster

// Record is one student entry. The JSON names match the snapshot layout the
// slot has always used, so existing data keeps loading.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RollNo  string `json:"rollNo"`
	PhoneNo string `json:"phoneNo"`
	Address string `json:"address"`
}

// Fields holds the editable part of a record.
type Fields struct {
	Name    string
	RollNo  string
	PhoneNo string
	Address string
}

// Field names one editable column.
type Field int

const (
	FieldName Field = iota
	FieldRollNo
	FieldPhoneNo
	FieldAddress
)

// AllFields lists the editable columns in form order.
var AllFields = []Field{FieldName, FieldRollNo, FieldPhoneNo, FieldAddress}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldRollNo:
		return "roll number"
	case FieldPhoneNo:
		return "phone number"
	case FieldAddress:
		return "address"
	default:
		return "unknown"
	}
}

// Fields returns the editable part of r.
func (r Record) Fields() Fields {
	return Fields{Name: r.Name, RollNo: r.RollNo, PhoneNo: r.PhoneNo, Address: r.Address}
}

// WithID returns a record carrying id and the supplied values.
func (f Fields) WithID(id string) Record {
	return Record{ID: id, Name: f.Name, RollNo: f.RollNo, PhoneNo: f.PhoneNo, Address: f.Address}
}

// Get returns the value of a single field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldRollNo:
		return f.RollNo
	case FieldPhoneNo:
		return f.PhoneNo
	case FieldAddress:
		return f.Address
	default:
		return ""
	}
}

// Set returns a copy with one field replaced.
func (f Fields) Set(field Field, value string) Fields {
	switch field {
	case FieldName:
		f.Name = value
	case FieldRollNo:
		f.RollNo = value
	case FieldPhoneNo:
		f.PhoneNo = value
	case FieldAddress:
		f.Address = value
	}
	return f
}

// Missing reports the fields that are empty. Whitespace counts as content.
func (f Fields) Missing() []Field {
	var missing []Field
	for _, field := range AllFields {
		if f.Get(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
