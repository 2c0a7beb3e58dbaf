//go:build unit

package entitlement_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/entitlement"
	"booking-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEntitlement(t *testing.T, mutate func(*builder.EntitlementBuilder)) *entitlement.Entitlement {
	t.Helper()
	e, err := builder.NewEntitlementBuilder().With(mutate).BuildDomain()
	require.NoError(t, err)
	return e
}

func TestResolve(t *testing.T) {
	now := time.Now()

	t.Run("候補なしなら権利なし", func(t *testing.T) {
		result := entitlement.Resolve(nil, now)
		assert.False(t, result.HasRights)
		assert.Nil(t, result.Entitlement)
	})

	t.Run("直接付与がパッケージより常に優先", func(t *testing.T) {
		direct := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("direct").WithoutExpiry().AsUnlimited()
		})
		pkg := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("package")
		})

		// 候補の並び順に依存しないこと
		for _, candidates := range [][]*entitlement.Entitlement{
			{direct, pkg},
			{pkg, direct},
		} {
			result := entitlement.Resolve(candidates, now)
			require.True(t, result.HasRights)
			assert.Equal(t, entitlement.SourceDirect, result.Source)
			assert.Equal(t, direct.ID(), result.Entitlement.ID())
		}
	})

	t.Run("パッケージがメンバーシップより優先", func(t *testing.T) {
		pkg := buildEntitlement(t, func(b *builder.EntitlementBuilder) { b.WithSource("package") })
		membership := buildEntitlement(t, func(b *builder.EntitlementBuilder) { b.WithSource("membership") })

		result := entitlement.Resolve([]*entitlement.Entitlement{membership, pkg}, now)
		require.True(t, result.HasRights)
		assert.Equal(t, entitlement.SourcePackage, result.Source)
	})

	t.Run("同一ソースは失効が近いものから消費", func(t *testing.T) {
		soon := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("package").WithExpiry(now.Add(24 * time.Hour))
		})
		later := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("package").WithExpiry(now.Add(30 * 24 * time.Hour))
		})
		never := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("package").WithoutExpiry()
		})

		result := entitlement.Resolve([]*entitlement.Entitlement{never, later, soon}, now)
		require.True(t, result.HasRights)
		assert.Equal(t, soon.ID(), result.Entitlement.ID())
	})

	t.Run("失効済み・残回数ゼロは除外", func(t *testing.T) {
		expired := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("direct").AsExpired()
		})
		depleted := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("package").WithRemainingUsage(0)
		})
		membership := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("membership")
		})

		result := entitlement.Resolve([]*entitlement.Entitlement{expired, depleted, membership}, now)
		require.True(t, result.HasRights)
		assert.Equal(t, entitlement.SourceMembership, result.Source)
	})

	t.Run("無制限マーカーは常に有効", func(t *testing.T) {
		unlimited := buildEntitlement(t, func(b *builder.EntitlementBuilder) {
			b.WithSource("membership").AsUnlimited()
		})

		result := entitlement.Resolve([]*entitlement.Entitlement{unlimited}, now)
		assert.True(t, result.HasRights)
	})
}

func TestEntitlement_ConsumeOne(t *testing.T) {
	t.Run("残回数を1減らす", func(t *testing.T) {
		e := buildEntitlement(t, func(b *builder.EntitlementBuilder) { b.WithRemainingUsage(2) })
		require.NoError(t, e.ConsumeOne())
		assert.Equal(t, int32(1), e.RemainingUsage())
	})

	t.Run("無制限は減らない", func(t *testing.T) {
		e := buildEntitlement(t, func(b *builder.EntitlementBuilder) { b.AsUnlimited() })
		require.NoError(t, e.ConsumeOne())
		assert.Equal(t, entitlement.RemainingUnlimited, e.RemainingUsage())
	})

	t.Run("残回数ゼロはエラー", func(t *testing.T) {
		e := buildEntitlement(t, func(b *builder.EntitlementBuilder) { b.WithRemainingUsage(0) })
		require.ErrorIs(t, e.ConsumeOne(), entitlement.ErrNoRemainingUsage)
	})
}
