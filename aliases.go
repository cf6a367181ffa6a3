package getset

import (
	"github.com/moisespsena-go/getset/property"
)

type (
	Interactor           = property.Interactor
	Type                 = property.Type
	Holder               = property.Holder
	IllegalPropertyError = property.IllegalPropertyError
	InvalidArgumentError = property.InvalidArgumentError
)

const (
	Any     = property.Any
	Boolean = property.Boolean
	Integer = property.Integer
	Float   = property.Float
	String  = property.String
	Array   = property.Array
	Object  = property.Object
)

var (
	ErrInvalidArgument = property.ErrInvalidArgument
	ErrIllegalProperty = property.ErrIllegalProperty

	ParseType         = property.ParseType
	IsIllegalProperty = property.IsIllegalProperty
	IsInvalidArgument = property.IsInvalidArgument
)
