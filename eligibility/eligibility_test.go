package eligibility_test

import (
	"testing"

	"github.com/TFMV/surrealhcc/eligibility"
	"github.com/TFMV/surrealhcc/types"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	tests := []struct {
		name string
		unit types.ClassUnit
		want bool
	}{
		{
			name: "plain class",
			unit: types.ClassUnit{QualifiedName: "com.acme.Service", Path: "src/main/java/com/acme/Service.java"},
			want: true,
		},
		{
			name: "empty name",
			unit: types.ClassUnit{Path: "src/main/java/Anon.java"},
			want: false,
		},
		{
			name: "test suffix",
			unit: types.ClassUnit{QualifiedName: "com.acme.ServiceTest", Path: "Service.java"},
			want: false,
		},
		{
			name: "integration test suffix",
			unit: types.ClassUnit{QualifiedName: "com.acme.ServiceIT", Path: "ServiceIT.java"},
			want: false,
		},
		{
			name: "class literally named Test",
			unit: types.ClassUnit{QualifiedName: "com.acme.Test", Path: "src/main/java/com/acme/Test.java"},
			want: true,
		},
		{
			name: "test source root",
			unit: types.ClassUnit{QualifiedName: "com.acme.Fixtures", Path: "src/test/java/com/acme/Fixtures.java"},
			want: false,
		},
		{
			name: "nested class of test",
			unit: types.ClassUnit{QualifiedName: "com.acme.Outer$InnerTests", Path: "Outer.java"},
			want: false,
		},
		{
			name: "generated simple annotation",
			unit: types.ClassUnit{QualifiedName: "com.acme.Dto", Annotations: []string{"Generated"}},
			want: false,
		},
		{
			name: "generated qualified annotation",
			unit: types.ClassUnit{QualifiedName: "com.acme.Dto", Annotations: []string{"javax.annotation.processing.Generated"}},
			want: false,
		},
		{
			name: "other annotation",
			unit: types.ClassUnit{QualifiedName: "com.acme.Dto", Annotations: []string{"Deprecated"}},
			want: true,
		},
	}

	pred := eligibility.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pred(tt.unit))
		})
	}
}

func TestWithTests(t *testing.T) {
	pred := eligibility.WithTests()
	assert.True(t, pred(types.ClassUnit{QualifiedName: "com.acme.ServiceTest", Path: "src/test/java/ServiceTest.java"}))
	assert.False(t, pred(types.ClassUnit{QualifiedName: "com.acme.Dto", Annotations: []string{"Generated"}}))
}

func TestAnd_Empty(t *testing.T) {
	assert.True(t, eligibility.And()(types.ClassUnit{}))
}
