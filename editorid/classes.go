package editorid

// Classes lists every form class whose editor ID assignment is captured.
// It mirrors the host's class hierarchy; a class missing from the host is
// an incompatibility, not something to skip.
var Classes = []string{
	"TESForm",
	"TESObject",
	"TESBoundObject",
	"MagicItem",
	"TESBoundAnimObject",
	"TESActorBase",
	"BGSStoryManagerTreeForm",
	"BGSStoryManagerNodeBase",
	"BGSKeyword",
	"BGSLocationRefType",
	"BGSAction",
	"BGSTransform",
	"BGSComponent",
	"BGSTextureSet",
	"BGSMenuIcon",
	"TESGlobal",
	"BGSDamageType",
	"TESClass",
	"TESFaction",
	"BGSHeadPart",
	"TESEyes",
	"TESRace",
	"TESSound",
	"BGSAcousticSpace",
	"EffectSetting",
	"Script",
	"TESLandTexture",
	"EnchantmentItem",
	"SpellItem",
	"ScrollItem",
	"TESObjectACTI",
	"BGSTalkingActivator",
	"TESObjectARMO",
	"TESObjectBOOK",
	"TESObjectCONT",
	"TESObjectDOOR",
	"IngredientItem",
	"TESObjectLIGH",
	"TESObjectMISC",
	"TESObjectSTAT",
	"BGSStaticCollection",
	"BGSMovableStatic",
	"TESGrass",
	"TESObjectTREE",
	"TESFlora",
	"TESFurniture",
	"TESObjectWEAP",
	"TESAmmo",
	"TESNPC",
	"TESLevCharacter",
	"TESKey",
	"AlchemyItem",
	"BGSIdleMarker",
	"BGSNote",
	"BGSProjectile",
	"BGSHazard",
	"BGSBendableSpline",
	"TESSoulGem",
	"BGSTerminal",
	"TESLevItem",
	"TESWeather",
	"TESClimate",
	"BGSShaderParticleGeometryData",
	"BGSReferenceEffect",
	"TESRegion",
	"NavMeshInfoMap",
	"TESObjectCELL",
	"TESObjectREFR",
	"Explosion",
	"Projectile",
	"Actor",
	"PlayerCharacter",
	"MissileProjectile",
	"ArrowProjectile",
	"GrenadeProjectile",
	"BeamProjectile",
	"FlameProjectile",
	"ConeProjectile",
	"BarrierProjectile",
	"Hazard",
	"TESWorldSpace",
	"TESObjectLAND",
	"NavMesh",
	"TESTopic",
	"TESTopicInfo",
	"TESQuest",
	"TESIdleForm",
	"TESPackage",
	"AlarmPackage",
	"DialoguePackage",
	"FleePackage",
	"SpectatorPackage",
	"TrespassPackage",
	"TESCombatStyle",
	"TESLoadScreen",
	"TESLevSpell",
	"TESObjectANIO",
	"TESWaterForm",
	"TESEffectShader",
	"BGSExplosion",
	"BGSDebris",
	"TESImageSpace",
	"TESImageSpaceModifier",
	"BGSListForm",
	"BGSPerk",
	"BGSBodyPartData",
	"BGSAddonNode",
	"ActorValueInfo",
	"BGSCameraShot",
	"BGSCameraPath",
	"BGSVoiceType",
	"BGSMaterialType",
	"BGSImpactData",
	"BGSImpactDataSet",
	"TESObjectARMA",
	"BGSEncounterZone",
	"BGSLocation",
	"BGSMessage",
	"BGSDefaultObjectManager",
	"BGSDefaultObject",
	"BGSLightingTemplate",
	"BGSMusicType",
	"BGSFootstep",
	"BGSFootstepSet",
	"BGSStoryManagerBranchNode",
	"BGSStoryManagerQuestNode",
	"BGSStoryManagerEventNode",
	"BGSDialogueBranch",
	"BGSMusicTrackFormWrapper",
	"TESWordOfPower",
	"TESShout",
	"BGSEquipSlot",
	"BGSRelationship",
	"BGSScene",
	"BGSAssociationType",
	"BGSOutfit",
	"BGSArtObject",
	"BGSMaterialObject",
	"BGSMovementType",
	"BGSSoundDescriptorForm",
	"BGSDualCastData",
	"BGSSoundCategory",
	"BGSSoundOutput",
	"BGSCollisionLayer",
	"BGSColorForm",
	"BGSReverbParameters",
	"BGSPackIn",
	"BGSAimModel",
	"BGSConstructibleObject",
	"BGSMod::Attachment::Mod",
	"BGSMaterialSwap",
	"BGSZoomData",
	"BGSInstanceNamingRules",
	"BGSSoundKeywordMapping",
	"BGSAudioEffectChain",
	"BGSAttractionRule",
	"BGSSoundCategorySnapshot",
	"BGSSoundTagSet",
	"BGSLensFlare",
	"BGSGodRays",
}
