package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) UciName() string {
	return opt.Name
}

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

// VectorOption holds space separated integers, as sent by Session.SendParameters.
type VectorOption struct {
	Name  string
	Value *[]int32
}

func (opt *VectorOption) UciName() string {
	return opt.Name
}

func (opt *VectorOption) UciString() string {
	var parts = make([]string, len(*opt.Value))
	for i, v := range *opt.Value {
		parts[i] = strconv.Itoa(int(v))
	}
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "string", strings.Join(parts, " "))
}

func (opt *VectorOption) Set(s string) error {
	var fields = strings.Fields(s)
	var values = make([]int32, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			return err
		}
		values = append(values, int32(v))
	}
	*opt.Value = values
	return nil
}
