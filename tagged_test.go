package lfqueue

import (
	"testing"

	check "gopkg.in/check.v1"
)

// Hook gocheck into go test for this one file — the pack/unpack
// arithmetic is pure and stateless, a natural fit for gocheck's
// suite-of-assertions style, used here alongside the plain testing.T
// style the rest of the package's tests use.
func TestTaggedPointer(t *testing.T) { check.TestingT(t) }

type taggedSuite struct{}

var _ = check.Suite(&taggedSuite{})

func (s *taggedSuite) TestPackUnpackRoundTrip(c *check.C) {
	p := packTagged(42, 7)
	c.Check(p.index(), check.Equals, uint32(42))
	c.Check(p.tag(), check.Equals, uint32(7))
}

func (s *taggedSuite) TestWithTagPreservesIndex(c *check.C) {
	p := packTagged(42, 7)
	q := p.withTag(9)
	c.Check(q.index(), check.Equals, uint32(42))
	c.Check(q.tag(), check.Equals, uint32(9))
}

func (s *taggedSuite) TestNullPtrIsNull(c *check.C) {
	c.Check(nullPtr.isNull(), check.Equals, true)
	c.Check(packTagged(0, 0).isNull(), check.Equals, false)
}

func (s *taggedSuite) TestDistinctTagsCompareUnequal(c *check.C) {
	a := packTagged(3, 1)
	b := packTagged(3, 2)
	c.Check(a == b, check.Equals, false)
	c.Check(a.index(), check.Equals, b.index())
}
