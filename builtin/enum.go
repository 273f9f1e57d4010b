package builtin

import (
	"unsafe"

	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
	"github.com/wippyai/docwriter/serializer"
)

// EnumSerializer writes enum values by name. Values with no name are
// written as numbers and reported as unknown.
type EnumSerializer struct{}

func (EnumSerializer) Store(out *document.Value, object, def unsafe.Pointer, typeID meta.TypeID, c *serializer.Context) result.Status {
	cd := c.Catalog().FindClassData(typeID)
	if cd == nil || cd.Enum == nil {
		return c.ReportError(docerrors.New(result.TaskRetrieveInfo, result.Unknown).
			TypeName(typeID.String()).
			Detail("no enum information").
			Build())
	}
	enum := cd.Enum
	v := enum.Load(object)
	if status, ok := storeDefault(out, def, c, func() bool { return enum.Load(def) == v }); ok {
		return status
	}

	if name, ok := enum.Lookup(v); ok {
		out.SetString(name)
		return result.New(result.TaskWriteValue, result.Success)
	}
	if enum.Signed {
		out.SetInt(v)
	} else {
		out.SetUint(uint64(v))
	}
	return c.ReportError(docerrors.InvalidEnum(v, cd.Name))
}
